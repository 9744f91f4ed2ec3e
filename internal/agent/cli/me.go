package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-auth-service/internal/agent/api"
)

// NewMeCmd создаёт CLI-команду для просмотра текущего пользователя.
//
// Команда отправляет сохранённый bearer-токен на сервер и выводит
// имя и email пользователя, которому этот токен принадлежит.
//
// Требования:
//   - пользователь должен быть залогинен (токен сохранён локально).
//
// Пример использования:
//
//	authcli me
func NewMeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Показать текущего пользователя",
		Long: `Показать пользователя, которому принадлежит сохранённый токен.

Пример:
  authcli me
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Creds == nil || app.Creds.Token == "" {
				return fmt.Errorf("no token, run: authcli login")
			}

			c := api.NewClient(app.ServerURL)
			resp, err := c.Me(app.Creds.Token)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"id=%s\nname=%s\nemail=%s\n",
				resp.User.ID, resp.User.Name, resp.User.Email,
			)
			return nil
		},
	}
}
