package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env (или переданные файлы) без перезаписи уже выставленных
// переменных, затем применяет флаги командной строки поверх окружения.
func Load(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil {
		return err
	}

	var portFlag, logLevelFlag string
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&logLevelFlag, "log-level", "", "Log level (overrides LOG_LEVEL environment variable)")
	flag.Parse()

	overrides := map[string]string{
		"PORT":      portFlag,
		"LOG_LEVEL": logLevelFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
