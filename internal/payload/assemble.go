package payload

import (
	"sort"
	"strings"

	"github.com/testlabtools/testlab-publish/internal/config"
)

// Assemble maps the configuration and the merged result document onto the
// outbound request. Pure transformation: no I/O, no failure modes. The
// returned value is handed to the transport and never mutated afterwards.
func Assemble(cfg *config.Config, xml string) *TestResult {
	strategy := cfg.Issues.ResolvedStrategy()

	tr := &TestResult{
		Status:       StatusFinished,
		ProjectKey:   cfg.ProjectKey,
		TestRunTitle: cfg.TestRun,
		Description:  cfg.TestRunDescription,
		Comment:      cfg.TestRunComment,
		User:         cfg.TestRunUser,

		MilestoneIdentifier: cfg.Milestone,
		MilestoneTitle:      cfg.Milestone,

		TestTargetTitle:      cfg.Version,
		TestEnvironmentTitle: cfg.TestEnvironment,

		TestCaseMappingField: cfg.TestCaseMappingField,
		Ruleset:              cfg.Ruleset,
		AutomationSource:     cfg.AutomationSource,
		ResultName:           cfg.ResultName,

		AddIssues:            strategy != config.IssueStrategyNone,
		MergeAsSingleIssue:   strategy == config.IssueStrategyOnePerRun,
		ReopenExistingIssues: cfg.Issues.ReopenExisting,
		AssignIssuesToUser:   cfg.Issues.AssignToUser,
		IssueStrategy:        strategy,

		ImportTestCases:             cfg.ImportTestCases,
		ImportTestCasesRootCategory: cfg.ImportTestCasesRootCategory,

		XMLFormat:                   cfg.Format,
		RobotCatenateParentKeywords: cfg.RobotCatenate(),
		XML:                         xml,
	}

	if len(cfg.Tags) > 0 {
		tags := strings.Join(cfg.Tags, " ")
		tr.Tags = &tags
	}

	if len(cfg.Parameters) > 0 {
		names := make([]string, 0, len(cfg.Parameters))
		for name := range cfg.Parameters {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			tr.Parameters = append(tr.Parameters, KeyValuePair{Key: name, Value: cfg.Parameters[name]})
		}
	}

	return tr
}
