package config

// Config is the top-level publish configuration parsed from testlab YAML.
type Config struct {
	// Endpoint selection: companyId for hosted Testlab, onpremiseUrl for
	// on-premise installations. Exactly one of the two is needed.
	CompanyID    string `yaml:"companyId"`
	OnpremiseURL string `yaml:"onpremiseUrl"`
	APIKey       string `yaml:"apiKey"`

	ProjectKey         string            `yaml:"projectKey"`
	TestRun            string            `yaml:"testRun"`
	TestRunUser        string            `yaml:"testRunUser"`
	TestRunDescription string            `yaml:"testRunDescription"`
	TestRunComment     string            `yaml:"testRunComment"`
	Milestone          string            `yaml:"milestone"`
	Version            string            `yaml:"version"`
	TestEnvironment    string            `yaml:"testEnvironment"`
	Tags               []string          `yaml:"tags"`
	Parameters         map[string]string `yaml:"parameters"`

	// Result-to-test-case mapping. testCaseMappingField names the custom
	// field used to match result names to test cases; alternatively a
	// server-side ruleset can take over the mapping entirely.
	TestCaseMappingField string `yaml:"testCaseMappingField"`
	Ruleset              string `yaml:"ruleset"`
	AutomationSource     string `yaml:"automationSource"`
	ResultName           string `yaml:"resultName"`

	ImportTestCases             bool   `yaml:"importTestCases"`
	ImportTestCasesRootCategory string `yaml:"importTestCasesRootCategory"`

	Issues Issues `yaml:"issues"`

	Resources []Resource `yaml:"resources"`

	IgnoreFailedTests bool   `yaml:"ignoreFailedTests"`
	ForcePublish      bool   `yaml:"forcePublish"`
	Format            string `yaml:"format"`

	// Pointer so an explicit "false" survives the default of true.
	RobotCatenateParentKeywords *bool `yaml:"robotCatenateParentKeywords"`
}

// Resource is one directory scan spec: a base directory plus Ant-style
// include and exclude glob patterns.
type Resource struct {
	Directory string   `yaml:"directory"`
	Includes  []string `yaml:"includes"`
	Excludes  []string `yaml:"excludes"`
}

// Issues configures defect-ticket creation for failing results. Either the
// strategy enumeration or the legacy add/mergeAsSingleIssue boolean pair may
// be used, not both.
type Issues struct {
	Strategy           string `yaml:"strategy"`
	Add                bool   `yaml:"add"`
	MergeAsSingleIssue bool   `yaml:"mergeAsSingleIssue"`
	AssignToUser       string `yaml:"assignToUser"`
	ReopenExisting     bool   `yaml:"reopenExisting"`
}

// Result formats accepted in the format field.
const (
	FormatJUnit = "junit"
	FormatRobot = "robot"
)

// Issue-creation strategies.
const (
	IssueStrategyNone           = "none"
	IssueStrategyOnePerRun      = "one-per-run"
	IssueStrategyOnePerTestCase = "one-per-test-case"
	IssueStrategyOnePerResult   = "one-per-result"
)

// ResolvedStrategy returns the effective issue-creation strategy. The legacy
// boolean pair degenerates onto the enumeration: add=false means none,
// add+mergeAsSingleIssue means one issue per run, add alone means one issue
// per failing test case.
func (i Issues) ResolvedStrategy() string {
	if i.Strategy != "" {
		return i.Strategy
	}
	if !i.Add {
		return IssueStrategyNone
	}
	if i.MergeAsSingleIssue {
		return IssueStrategyOnePerRun
	}
	return IssueStrategyOnePerTestCase
}

// RobotCatenate returns robotCatenateParentKeywords with its default of true.
func (c *Config) RobotCatenate() bool {
	if c.RobotCatenateParentKeywords == nil {
		return true
	}
	return *c.RobotCatenateParentKeywords
}
