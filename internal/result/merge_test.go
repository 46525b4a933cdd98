package result

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mergedHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n<testsuites>\n"
	mergedFooter = "\n</testsuites>"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "TEST-result.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestMergeJUnit_WrapperDiscarded(t *testing.T) {
	inner := "<testsuite name=\"a\" tests=\"3\" failures=\"2\" errors=\"0\">\n" +
		"    <testcase name=\"t1\"/>\n" +
		"  </testsuite>\n"
	file := writeFile(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<testsuites>\n  "+inner+"</testsuites>\n")

	doc, sig := MergeJUnit(discard(), []string{file})

	assert.Equal(t, mergedHeader+inner+mergedFooter, doc)
	assert.True(t, sig.HasFailures)
	assert.False(t, sig.HasErrors)
}

func TestMergeJUnit_BareSuiteVerbatim(t *testing.T) {
	suite := "<testsuite name=\"b\" tests=\"1\" failures=\"0\" errors=\"1\">\n</testsuite>"
	file := writeFile(t, suite)

	doc, sig := MergeJUnit(discard(), []string{file})

	assert.Equal(t, mergedHeader+suite+mergedFooter, doc)
	assert.False(t, sig.HasFailures)
	assert.True(t, sig.HasErrors)
}

func TestMergeJUnit_PrologWithoutWrapper(t *testing.T) {
	suite := "<testsuite name=\"c\" failures=\"0\" errors=\"0\"><testcase name=\"t\"/></testsuite>"
	file := writeFile(t, "<?xml version=\"1.0\"?>\n"+suite)

	doc, sig := MergeJUnit(discard(), []string{file})

	assert.Equal(t, mergedHeader+suite+mergedFooter, doc)
	assert.False(t, sig.HasFailures)
	assert.False(t, sig.HasErrors)
}

func TestMergeJUnit_CaseInsensitiveTags(t *testing.T) {
	inner := "<TestSuite name=\"d\" Failures=\"1\"></TestSuite>"
	file := writeFile(t, "<?XML version=\"1.0\"?><TESTSUITES>"+inner+"</TESTSUITES>")

	doc, sig := MergeJUnit(discard(), []string{file})

	// Tag matching is case-insensitive, the extracted text keeps its case.
	assert.Equal(t, mergedHeader+inner+mergedFooter, doc)
	assert.True(t, sig.HasFailures)
}

func TestMergeJUnit_MultipleFilesInOrder(t *testing.T) {
	one := writeFile(t, "<testsuite name=\"one\" failures=\"0\" errors=\"0\"></testsuite>")
	two := writeFile(t, "<testsuite name=\"two\" failures=\"0\" errors=\"0\"></testsuite>")

	doc, sig := MergeJUnit(discard(), []string{one, two})

	assert.Equal(t, mergedHeader+
		"<testsuite name=\"one\" failures=\"0\" errors=\"0\"></testsuite>"+
		"<testsuite name=\"two\" failures=\"0\" errors=\"0\"></testsuite>"+
		mergedFooter, doc)
	assert.False(t, sig.Any())
}

func TestMergeJUnit_UnreadableFilesAreSkipped(t *testing.T) {
	valid := writeFile(t, "<testsuite name=\"ok\" failures=\"1\"></testsuite>")
	missing1 := filepath.Join(t.TempDir(), "gone-1.xml")
	missing2 := filepath.Join(t.TempDir(), "gone-2.xml")

	doc, sig := MergeJUnit(discard(), []string{missing1, valid, missing2})

	assert.Equal(t, mergedHeader+"<testsuite name=\"ok\" failures=\"1\"></testsuite>"+mergedFooter, doc)
	assert.True(t, sig.HasFailures)
}

func TestMergeJUnit_NoMarkupContributesNothing(t *testing.T) {
	file := writeFile(t, "just some text, no xml here")

	doc, sig := MergeJUnit(discard(), []string{file})

	assert.Equal(t, mergedHeader+mergedFooter, doc)
	assert.False(t, sig.Any())
}

func TestMergeJUnit_EmptyWrapperContributesNothing(t *testing.T) {
	// A wrapper with no inner suite has no start cursor to advance to; the
	// file is treated as malformed and skipped.
	file := writeFile(t, "<testsuites>   </testsuites>")

	doc, sig := MergeJUnit(discard(), []string{file})

	assert.Equal(t, mergedHeader+mergedFooter, doc)
	assert.False(t, sig.Any())
}

func TestMergeJUnit_PrologOnlyFileSkipped(t *testing.T) {
	file := writeFile(t, "<?xml version=\"1.0\"?>")

	doc, sig := MergeJUnit(discard(), []string{file})

	assert.Equal(t, mergedHeader+mergedFooter, doc)
	assert.False(t, sig.Any())
}

func TestMergeJUnit_UnclosedWrapperSkipped(t *testing.T) {
	file := writeFile(t, "<testsuites><testsuite name=\"x\" failures=\"4\">")

	doc, sig := MergeJUnit(discard(), []string{file})

	assert.Equal(t, mergedHeader+mergedFooter, doc)
	assert.False(t, sig.Any())
}

func TestMergeJUnit_OnlyFirstSuiteTagScanned(t *testing.T) {
	// The failure heuristic inspects the first <testsuite> tag per file
	// only; a later sibling with failures goes undetected by design.
	file := writeFile(t, "<testsuites>"+
		"<testsuite name=\"clean\" failures=\"0\" errors=\"0\"></testsuite>"+
		"<testsuite name=\"dirty\" failures=\"3\" errors=\"0\"></testsuite>"+
		"</testsuites>")

	_, sig := MergeJUnit(discard(), []string{file})

	assert.False(t, sig.HasFailures)
	assert.False(t, sig.HasErrors)
}

func TestMergeJUnit_FailureAcrossFiles(t *testing.T) {
	clean := writeFile(t, "<testsuite name=\"clean\" failures=\"0\" errors=\"0\"></testsuite>")
	dirty := writeFile(t, "<testsuite name=\"dirty\" failures=\"10\" errors=\"0\"></testsuite>")

	_, sig := MergeJUnit(discard(), []string{clean, dirty})

	assert.True(t, sig.HasFailures)
	assert.False(t, sig.HasErrors)
}

func TestMergeJUnit_NoFiles(t *testing.T) {
	doc, sig := MergeJUnit(discard(), nil)
	assert.Equal(t, mergedHeader+mergedFooter, doc)
	assert.False(t, sig.Any())
}

func TestSuiteBody_TrailingContentAfterWrapperDropped(t *testing.T) {
	body, err := suiteBody("<testsuites><testsuite name=\"x\"></testsuite></testsuites><!-- trailer -->")
	require.NoError(t, err)
	assert.Equal(t, "<testsuite name=\"x\"></testsuite>", body)
}

func TestScanSuiteTag_AttributesWithoutCounts(t *testing.T) {
	failures, errs := scanSuiteTag("<testsuite name=\"x\"><testcase/></testsuite>")
	assert.False(t, failures)
	assert.False(t, errs)
}
