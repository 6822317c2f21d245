package internal

import (
	"os/user"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/swell-scan/swell/internal/assets"
	"github.com/swell-scan/swell/internal/classify"
	"github.com/swell-scan/swell/internal/intake"
	"github.com/wal-g/tracelog"
)

const (
	AssetIDSetting          = "SWELL_ASSET_ID"
	IntakeURLSetting        = "SWELL_INTAKE_URL"
	AssetsURLSetting        = "SWELL_ASSETS_URL"
	NegotiateTimeoutSetting = "SWELL_NEGOTIATE_TIMEOUT"
	TransferTimeoutSetting  = "SWELL_TRANSFER_TIMEOUT"
	TypeProbeSetting        = "SWELL_TYPE_PROBE"
	FileCommandSetting      = "SWELL_FILE_COMMAND"
	RulesFileSetting        = "SWELL_RULES_FILE"
	NetworkRateLimitSetting = "SWELL_NETWORK_RATE_LIMIT"
	StatsdAddressSetting    = "SWELL_STATSD_ADDRESS"
	LogLevelSetting         = "SWELL_LOG_LEVEL"

	AssetIDFlag = "asset-id"
)

// DefaultAssetID may be set at build time with
// -ldflags "-X github.com/swell-scan/swell/internal.DefaultAssetID=...".
var DefaultAssetID = ""

var (
	CfgFile string

	defaultConfigValues = map[string]string{
		IntakeURLSetting:        intake.DefaultEndpoint,
		AssetsURLSetting:        assets.DefaultEndpoint,
		NegotiateTimeoutSetting: intake.DefaultNegotiateTimeout.String(),
		TransferTimeoutSetting:  intake.DefaultTransferTimeout.String(),
		TypeProbeSetting:        classify.FileCommandProbeName,
		FileCommandSetting:      classify.DefaultFileCommand,
		LogLevelSetting:         tracelog.NormalLogLevel,
	}

	AllowedSettings = map[string]bool{
		AssetIDSetting:          true,
		IntakeURLSetting:        true,
		AssetsURLSetting:        true,
		NegotiateTimeoutSetting: true,
		TransferTimeoutSetting:  true,
		TypeProbeSetting:        true,
		FileCommandSetting:      true,
		RulesFileSetting:        true,
		NetworkRateLimitSetting: true,
		StatsdAddressSetting:    true,
		LogLevelSetting:         true,
	}
)

// AddConfigFlags registers the flags every swell command accepts.
func AddConfigFlags(cmd *cobra.Command) {
	cfgFlags := &pflag.FlagSet{}
	cfgFlags.StringVar(&CfgFile, "config", "", "config file (default is $HOME/.swell.* in any format viper reads: json, yaml, toml, ...)")
	cfgFlags.String(AssetIDFlag, "", "asset to upload files for, can be set through "+AssetIDSetting)
	_ = viper.BindPFlag(AssetIDSetting, cfgFlags.Lookup(AssetIDFlag))
	cmd.PersistentFlags().AddFlagSet(cfgFlags)
}

// InitConfig reads config file and ENV variables if set.
func InitConfig() {
	globalViper := viper.GetViper()
	globalViper.AutomaticEnv()
	SetDefaultValues(globalViper)
	ReadConfigFromFile(globalViper, CfgFile)
	CheckAllowedSettings(globalViper)
}

// ReadConfigFromFile read config to the viper instance
func ReadConfigFromFile(config *viper.Viper, configFile string) {
	if configFile != "" {
		config.SetConfigFile(configFile)
	} else {
		usr, err := user.Current()
		if err != nil {
			tracelog.WarningLogger.Printf("Failed to find home directory: %v", err)
			return
		}
		// Search config in home directory with name ".swell" (without extension).
		config.AddConfigPath(usr.HomeDir)
		config.SetConfigName(".swell")
	}

	err := config.ReadInConfig()
	if err == nil {
		tracelog.DebugLogger.Println("Using config file:", config.ConfigFileUsed())
	} else if config.ConfigFileUsed() != "" {
		// Config file is found, but parsing failed
		tracelog.WarningLogger.Printf("Failed to parse config file %s. %s.", config.ConfigFileUsed(), err)
	}
}

// SetDefaultValues set default settings to the viper instance
func SetDefaultValues(config *viper.Viper) {
	for setting, value := range defaultConfigValues {
		config.SetDefault(setting, value)
	}
}

// CheckAllowedSettings warnings if a viper instance's setting not allowed
func CheckAllowedSettings(config *viper.Viper) {
	for k := range config.AllSettings() {
		k = strings.ToUpper(k)
		if !AllowedSettings[k] {
			tracelog.WarningLogger.Println(k + " is unknown")
		}
	}
}

// GetSetting extract setting by key if key is set, return empty string otherwise
func GetSetting(key string) (value string, ok bool) {
	if viper.IsSet(key) {
		value = viper.GetString(key)
		return value, value != ""
	}
	return "", false
}

func GetDurationSetting(key string) (time.Duration, error) {
	value, ok := GetSetting(key)
	if !ok {
		return 0, nil
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %s", key)
	}
	if duration < 0 {
		return 0, errors.Errorf("%s must not be negative, got %s", key, value)
	}
	return duration, nil
}

func GetInt64Setting(key string) (int64, error) {
	value, ok := GetSetting(key)
	if !ok {
		return 0, nil
	}
	number, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to parse %s", key)
	}
	return number, nil
}
