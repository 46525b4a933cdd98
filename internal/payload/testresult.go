// Package payload builds the request body for the service's add-test-result
// operation.
package payload

// StatusFinished is the only status this tool ever publishes: the run's
// results are complete when the build phase has finished.
const StatusFinished = "FINISHED"

// TestResult is the wire model of one published test run.
type TestResult struct {
	Status       string `json:"status"`
	ProjectKey   string `json:"projectKey"`
	TestRunTitle string `json:"testRunTitle"`
	Description  string `json:"description,omitempty"`
	Comment      string `json:"comment,omitempty"`
	User         string `json:"user,omitempty"`

	// The configured milestone is sent in both fields: the service matches
	// the identifier first and falls back to the title.
	MilestoneIdentifier string `json:"milestoneIdentifier,omitempty"`
	MilestoneTitle      string `json:"milestoneTitle,omitempty"`

	TestTargetTitle      string `json:"testTargetTitle,omitempty"`
	TestEnvironmentTitle string `json:"testEnvironmentTitle,omitempty"`

	// Tags is tri-state: nil leaves the run's existing tags untouched, a
	// value replaces them all. When set it holds all tags joined by single
	// spaces.
	Tags *string `json:"tags,omitempty"`

	Parameters []KeyValuePair `json:"parameters,omitempty"`

	TestCaseMappingField string `json:"testCaseMappingField,omitempty"`
	Ruleset              string `json:"ruleset,omitempty"`
	AutomationSource     string `json:"automationSource,omitempty"`
	ResultName           string `json:"resultName,omitempty"`

	AddIssues            bool   `json:"addIssues"`
	MergeAsSingleIssue   bool   `json:"mergeAsSingleIssue"`
	ReopenExistingIssues bool   `json:"reopenExistingIssues"`
	AssignIssuesToUser   string `json:"assignIssuesToUser,omitempty"`
	IssueStrategy        string `json:"issueStrategy,omitempty"`

	ImportTestCases             bool   `json:"importTestCases"`
	ImportTestCasesRootCategory string `json:"importTestCasesRootCategory,omitempty"`

	XMLFormat                   string `json:"xmlFormat"`
	RobotCatenateParentKeywords bool   `json:"robotCatenateParentKeywords"`
	XML                         string `json:"xml"`
}

// KeyValuePair is one test-case parameter value.
type KeyValuePair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
