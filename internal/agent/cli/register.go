package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-auth-service/internal/agent/api"
	"github.com/IvanChernomyrdin/go-auth-service/internal/agent/config"
)

// NewRegisterCmd создаёт CLI-команду для регистрации нового пользователя.
//
// Команда выполняет регистрацию пользователя на сервере с использованием
// имени, email и пароля. Сервер сразу выдаёт bearer-токен, команда сохраняет
// его в локальный конфигурационный файл.
//
// Флаги --name и --email обязательны. Если --password не указан,
// пароль запрашивается скрытым вводом с терминала.
//
// Пример использования:
//
//	authcli register --name Ann --email test@example.com --password StrongPass123
func NewRegisterCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Регистрация нового пользователя",
		Long: `Регистрация нового пользователя на сервере.

Пример:
  authcli register --name Ann --email test@example.com --password StrongPass123
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}

			c := api.NewClient(app.ServerURL)
			// выполняет добавление нового пользователя в бд
			resp, err := c.Register(name, email, pw)
			if err != nil {
				return err
			}

			// сервер выдал токен сразу при регистрации — сохраняем
			app.Creds.Token = resp.Data.Token
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "registration successful (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name for registration")
	cmd.Flags().StringVar(&email, "email", "", "email for registration")
	cmd.Flags().StringVar(&password, "password", "", "password for registration")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")

	return cmd
}
