package classify

import (
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultNeverCollect is evaluated before DefaultAlwaysCollect.
// `\.-wal$` only matches a literal ".-wal" suffix, so "*.db-wal" files are not blocked by it.
// `\.zip` is left unanchored on purpose and also blocks paths like "x.zip.d/run.sh".
var DefaultNeverCollect = []string{
	`\.7z$`, `\.-wal$`, `\.accdb$`, `\.accde$`, `\.accdr$`, `\.accdt$`, `\.accdu$`, `\.asl$`, `\.bin$`,
	`\.csv$`, `\.dat$`, `\.db-shm$`, `\.db$`, `\.doc$`, `\.docb$`, `\.docm$`, `\.docx$`, `\.dot$`,
	`\.dotm$`, `\.DS_Store$`, `\.emlx$`, `\.img$`, `\.json$`, `\.key$`, `\.md$`, `\.mdb$`, `\.mpp$`,
	`\.msf$`, `\.msg$`, `\.numbers$`, `\.odb$`, `\.odp$`, `\.ods$`, `\.odt$`, `\.one$`, `\.oft$`,
	`\.ost$`, `\.otf$`, `\.pages$`, `\.pdf$`, `\.plist$`, `\.pot$`, `\.potx$`, `\.ppam$`, `\.pps$`,
	`\.ppsm$`, `\.ppsx$`, `\.ppt$`, `\.pptm$`, `\.pptx$`, `\.pst$`, `\.pub$`, `\.rar$`, `\.rtf$`,
	`\.sldm$`, `\.sldx$`, `\.sqlite-journal$`, `\.sqlite$`, `\.swp$`, `\.ttf$`, `\.tracev3$`, `\.txt$`,
	`\.vcf$`, `\.xla$`, `\.xlam$`, `\.xlm$`, `\.xls$`, `\.xlsb$`, `\.xlsm$`, `\.xlsx$`, `\.xlt$`,
	`\.xltm$`, `\.xltx$`, `\.xlw$`, `\.wpd$`, `\.xps$`, `\.zip`,
}

// `\.zsh` is left unanchored on purpose and also forces "*.zshrc".
var DefaultAlwaysCollect = []string{
	`\.app$`, `\.appx$`, `\.appxbundle$`, `\.bat$`, `\.class$`, `\.cmd$`, `\.com$`, `\.crx$`, `\.dll$`,
	`\.dmg$`, `\.drv$`, `\.dylib$`, `\.ear$`, `\.efi$`, `\.elf$`, `\.exe$`, `\.hta$`, `\.iso$`, `\.jar$`,
	`\.java$`, `\.js$`, `\.lib$`, `\.lnk$`, `\.msi$`, `\.nar$`, `\.pkg$`, `\.pl$`, `\.ps1$`, `\.py$`,
	`\.pyc$`, `\.rb$`, `\.scr$`, `\.sct$`, `\.sfx$`, `\.sh$`, `\.so$`, `\.sys$`, `\.vb$`, `\.vba$`,
	`\.vbs$`, `\.vbscript$`, `\.war$`, `\.xpi$`, `\.zsh`,
}

// DefaultBinaryIndicators cover `file` output and MIME sniffing output.
// "ELF " catches static, Go and musl binaries that carry no GNU/Linux ABI note.
var DefaultBinaryIndicators = []string{"GNU/Linux", "ELF ", "application/x-elf"}

var DefaultScriptIndicators = []string{"shell script", ShellScriptMIME}

// Rule is a raw regular expression searched for in a file path.
type Rule struct {
	pattern string
	re      *regexp.Regexp
}

func NewRule(pattern string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, errors.Wrapf(err, "invalid rule pattern %q", pattern)
	}
	return Rule{pattern: pattern, re: re}, nil
}

func (r Rule) Match(path string) bool {
	return r.re.MatchString(path)
}

func (r Rule) String() string {
	return r.pattern
}

// RuleSet is evaluated in order; the first matching rule wins.
type RuleSet []Rule

func CompileRuleSet(patterns []string) (RuleSet, error) {
	set := make(RuleSet, 0, len(patterns))
	for _, pattern := range patterns {
		rule, err := NewRule(pattern)
		if err != nil {
			return nil, err
		}
		set = append(set, rule)
	}
	return set, nil
}

func MustCompileRuleSet(patterns []string) RuleSet {
	set, err := CompileRuleSet(patterns)
	if err != nil {
		panic(err)
	}
	return set
}

func (s RuleSet) Match(path string) (Rule, bool) {
	for _, rule := range s {
		if rule.Match(path) {
			return rule, true
		}
	}
	return Rule{}, false
}

func (s RuleSet) Patterns() []string {
	patterns := make([]string, 0, len(s))
	for _, rule := range s {
		patterns = append(patterns, rule.pattern)
	}
	return patterns
}

type Rules struct {
	NeverCollect     RuleSet
	AlwaysCollect    RuleSet
	BinaryIndicators []string
	ScriptIndicators []string
}

func DefaultRules() *Rules {
	return &Rules{
		NeverCollect:     MustCompileRuleSet(DefaultNeverCollect),
		AlwaysCollect:    MustCompileRuleSet(DefaultAlwaysCollect),
		BinaryIndicators: append([]string(nil), DefaultBinaryIndicators...),
		ScriptIndicators: append([]string(nil), DefaultScriptIndicators...),
	}
}

// rulesFile keys that are absent keep their defaults.
type rulesFile struct {
	NeverCollect     *[]string `yaml:"never_collect"`
	AlwaysCollect    *[]string `yaml:"always_collect"`
	BinaryIndicators *[]string `yaml:"binary_indicators"`
	ScriptIndicators *[]string `yaml:"script_indicators"`
}

func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rules file %s", path)
	}
	rules, err := ParseRules(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load rules file %s", path)
	}
	return rules, nil
}

func ParseRules(data []byte) (*Rules, error) {
	var file rulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "failed to parse rules")
	}

	rules := DefaultRules()
	var err error
	if file.NeverCollect != nil {
		if rules.NeverCollect, err = CompileRuleSet(*file.NeverCollect); err != nil {
			return nil, errors.Wrap(err, "never_collect")
		}
	}
	if file.AlwaysCollect != nil {
		if rules.AlwaysCollect, err = CompileRuleSet(*file.AlwaysCollect); err != nil {
			return nil, errors.Wrap(err, "always_collect")
		}
	}
	if file.BinaryIndicators != nil {
		rules.BinaryIndicators = nonEmpty(*file.BinaryIndicators)
	}
	if file.ScriptIndicators != nil {
		rules.ScriptIndicators = nonEmpty(*file.ScriptIndicators)
	}
	return rules, nil
}

// an empty indicator would match every probe output
func nonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			result = append(result, value)
		}
	}
	return result
}
