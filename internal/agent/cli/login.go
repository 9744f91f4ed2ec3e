package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-auth-service/internal/agent/api"
	"github.com/IvanChernomyrdin/go-auth-service/internal/agent/config"
)

// NewLoginCmd создаёт CLI-команду для входа пользователя в систему.
//
// Команда выполняет аутентификацию пользователя на сервере,
// получает новый bearer-токен и сохраняет его в локальный
// конфигурационный файл. Прежние токены при этом остаются действительными.
//
// Флаг --email обязателен. Если --password не указан,
// пароль запрашивается скрытым вводом с терминала.
//
// Пример использования:
//
//	authcli login --email test@example.com --password StrongPass123
func NewLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Логин пользователя (получить bearer-токен)",
		Long: `Логин пользователя.

Пример:
  authcli login --email test@example.com --password StrongPass123
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}

			// создаём API-клиент для общения с сервером
			c := api.NewClient(app.ServerURL)
			// выполняем логин пользователя
			resp, err := c.Login(email, pw)
			if err != nil {
				return err
			}

			// сохраняем полученный токен в состоянии приложения
			app.Creds.Token = resp.Data.Token

			// сохраняем токен в локальный конфигурационный файл
			if err := config.Save(app.CredsPath, app.Creds); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "login ok (token saved)")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email for login")
	cmd.Flags().StringVar(&password, "password", "", "password for login")
	cmd.MarkFlagRequired("email")

	return cmd
}
