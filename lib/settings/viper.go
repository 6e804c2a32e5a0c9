package settings

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// ReadConfig loads the settings from jsonStr, or from settings.json in the
// working directory when jsonStr is empty. Environment variables prefixed
// with BUILDER_ override both.
func ReadConfig(jsonStr string) (*Settings, error) {
	viper.SetConfigName("settings")
	viper.SetConfigType("json")

	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvPrefix(strings.ToLower(envPrefix))
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if jsonStr != "" {
		if err := viper.ReadConfig(strings.NewReader(jsonStr)); err != nil {
			return nil, err
		}
	} else {
		if err := viper.ReadInConfig(); err != nil {
			var configFileNotFoundError viper.ConfigFileNotFoundError
			if !errors.As(err, &configFileNotFoundError) {
				return nil, err
			}
			// no settings.json, defaults apply
		}
	}

	ApplyRegistryDefaults()

	dbTypeToUse, err := ParseDBType(viper.GetString(DBType))
	if err != nil {
		return nil, err
	}

	s := &Settings{
		IP:       viper.GetString(IP),
		Port:     viper.GetString(Port),
		LogLevel: viper.GetString(Loglevel),
		DBType:   dbTypeToUse,
		DBSettings: &DBSettings{
			Filename: viper.GetString(DBSettingsFilename),
			Host:     viper.GetString(DBSettingsHost),
			Port:     viper.GetString(DBSettingsPort),
			Database: viper.GetString(DBSettingsDatabase),
			User:     viper.GetString(DBSettingsUser),
			Password: viper.GetString(DBSettingsPassword),
		},

		Revisions: Revisions{
			Keep:          viper.GetInt(RevisionsKeep),
			MaxToDisplay:  viper.GetInt(RevisionsMaxToDisplay),
			BuilderTypes:  viper.GetStringSlice(BuilderPostTypes),
			AjaxEnabled:   viper.GetBool(AjaxEnabled),
			DefaultLocale: viper.GetString(DefaultLocale),
		},
		CSS: CSS{
			UploadDir: viper.GetString(CSSUploadDir),
			Minify:    viper.GetBool(CSSMinify),
		},
		Nonce: Nonce{
			Secret:   viper.GetString(NonceSecret),
			Lifetime: viper.GetInt64(NonceLifetime),
		},
		Cookie: Cookie{
			SameSite:        viper.GetString(CookieSameSite),
			SessionLifetime: viper.GetInt64(CookieSessionLifetime),
		},

		EnableMetrics: viper.GetBool(EnableMetrics),
		GitVersion:    GitVersion(),
	}

	return s, nil
}
