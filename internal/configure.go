package internal

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/swell-scan/swell/internal/assets"
	"github.com/swell-scan/swell/internal/classify"
	"github.com/swell-scan/swell/internal/intake"
	"github.com/swell-scan/swell/internal/limiters"
	"github.com/swell-scan/swell/internal/upload"
	"github.com/wal-g/tracelog"
)

func Configure() {
	err := ConfigureLogging()
	if err != nil {
		tracelog.ErrorLogger.Println("Failed to configure logging.")
		tracelog.ErrorLogger.FatalError(err)
	}

	// Show all relevant ENV vars in DEVEL Logging Mode
	var buff bytes.Buffer
	buff.WriteString("--- COMPILED ENVIRONMENT VARS ---\n")
	var keys []string
	for k := range viper.AllSettings() {
		keys = append(keys, strings.ToUpper(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		if val, ok := os.LookupEnv(k); ok {
			fmt.Fprintf(&buff, "\t%s=%s\n", k, val)
		}
	}
	tracelog.DebugLogger.Print(buff.String())
}

func ConfigureLogging() error {
	if logLevel, ok := GetSetting(LogLevelSetting); ok {
		return tracelog.UpdateLogLevel(logLevel)
	}
	return nil
}

// GetAssetID prefers the configured asset over the compiled-in one.
func GetAssetID() string {
	if assetID, ok := GetSetting(AssetIDSetting); ok {
		return assetID
	}
	return DefaultAssetID
}

func AssertAssetIDSet() (string, error) {
	assetID := strings.TrimSpace(GetAssetID())
	if assetID == "" {
		return "", NewUnsetAssetIDError()
	}
	return assetID, nil
}

func ConfigureClassifier() (*classify.Classifier, error) {
	rules := classify.DefaultRules()
	if rulesFile, ok := GetSetting(RulesFileSetting); ok {
		var err error
		rules, err = classify.LoadRules(rulesFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", RulesFileSetting)
		}
	}

	probeName, _ := GetSetting(TypeProbeSetting)
	fileCommand, _ := GetSetting(FileCommandSetting)
	probe, err := classify.NewTypeProbe(probeName, fileCommand)
	if err != nil {
		return nil, err
	}
	return classify.NewClassifier(rules, probe), nil
}

func ConfigureIntakeClient() (*intake.Client, error) {
	negotiateTimeout, err := GetDurationSetting(NegotiateTimeoutSetting)
	if err != nil {
		return nil, err
	}
	transferTimeout, err := GetDurationSetting(TransferTimeoutSetting)
	if err != nil {
		return nil, err
	}
	rateLimit, err := GetInt64Setting(NetworkRateLimitSetting)
	if err != nil {
		return nil, err
	}

	endpoint, _ := GetSetting(IntakeURLSetting)
	return intake.NewClient(endpoint,
		intake.WithTimeouts(negotiateTimeout, transferTimeout),
		intake.WithRateLimiter(limiters.NewNetworkLimiter(rateLimit)),
	), nil
}

func ConfigureUploader(assetID string) (*upload.Uploader, error) {
	client, err := ConfigureIntakeClient()
	if err != nil {
		return nil, errors.Wrap(err, "failed to configure intake client")
	}
	return upload.NewUploader(assetID, client), nil
}

func ConfigureAssetsClient() *assets.Client {
	endpoint, _ := GetSetting(AssetsURLSetting)
	return assets.NewClient(endpoint, nil)
}
