package aliases

import "strings"

// CheckSuffix is the naming convention for rule modules. Modules whose
// canonical name ends with it are also reachable without it.
const CheckSuffix = "Check"

// builtinModules lists the canonical identifier of every shipped module.
var builtinModules = []string{
	"ruleset.checks.FileContentsHolder",
	"ruleset.checks.NewlineAtEndOfFileCheck",
	"ruleset.checks.TodoCommentCheck",
	"ruleset.checks.TrailingCommentCheck",

	"ruleset.checks.blocks.AvoidNestedBlocksCheck",
	"ruleset.checks.blocks.EmptyBlockCheck",
	"ruleset.checks.blocks.LeftCurlyCheck",
	"ruleset.checks.blocks.RightCurlyCheck",

	"ruleset.checks.coding.DefaultComesLastCheck",
	"ruleset.checks.coding.EmptyStatementCheck",
	"ruleset.checks.coding.FallThroughCheck",
	"ruleset.checks.coding.HiddenFieldCheck",
	"ruleset.checks.coding.IllegalTokenCheck",
	"ruleset.checks.coding.IllegalTokenTextCheck",
	"ruleset.checks.coding.InnerAssignmentCheck",
	"ruleset.checks.coding.MagicNumberCheck",
	"ruleset.checks.coding.MissingSwitchDefaultCheck",
	"ruleset.checks.coding.MultipleStringLiteralsCheck",
	"ruleset.checks.coding.NakedReturnCheck",
	"ruleset.checks.coding.NestedForDepthCheck",
	"ruleset.checks.coding.NestedIfDepthCheck",
	"ruleset.checks.coding.OneStatementPerLineCheck",
	"ruleset.checks.coding.ParameterAssignmentCheck",
	"ruleset.checks.coding.ReturnCountCheck",
	"ruleset.checks.coding.SimplifyBooleanExpressionCheck",
	"ruleset.checks.coding.SimplifyBooleanReturnCheck",
	"ruleset.checks.coding.UnnecessaryParenthesesCheck",

	"ruleset.checks.header.HeaderCheck",
	"ruleset.checks.header.RegexpHeaderCheck",

	"ruleset.checks.imports.AvoidBlankImportCheck",
	"ruleset.checks.imports.AvoidDotImportCheck",
	"ruleset.checks.imports.IllegalImportCheck",
	"ruleset.checks.imports.ImportOrderCheck",
	"ruleset.checks.imports.RedundantImportCheck",
	"ruleset.checks.imports.UnusedImportsCheck",

	"ruleset.checks.metrics.BooleanExpressionComplexityCheck",
	"ruleset.checks.metrics.CyclomaticComplexityCheck",
	"ruleset.checks.metrics.FanOutComplexityCheck",
	"ruleset.checks.metrics.NCSSCheck",
	"ruleset.checks.metrics.NPathComplexityCheck",

	"ruleset.checks.naming.AbbreviationAsWordInNameCheck",
	"ruleset.checks.naming.ConstantNameCheck",
	"ruleset.checks.naming.LocalVariableNameCheck",
	"ruleset.checks.naming.MemberNameCheck",
	"ruleset.checks.naming.MethodNameCheck",
	"ruleset.checks.naming.PackageNameCheck",
	"ruleset.checks.naming.ParameterNameCheck",
	"ruleset.checks.naming.ReceiverNameCheck",
	"ruleset.checks.naming.TypeNameCheck",

	"ruleset.checks.regexp.RegexpCheck",
	"ruleset.checks.regexp.RegexpMultilineCheck",
	"ruleset.checks.regexp.RegexpOnFilenameCheck",
	"ruleset.checks.regexp.RegexpSinglelineCheck",

	"ruleset.checks.sizes.ExecutableStatementCountCheck",
	"ruleset.checks.sizes.FileLengthCheck",
	"ruleset.checks.sizes.FuncLitLengthCheck",
	"ruleset.checks.sizes.LineLengthCheck",
	"ruleset.checks.sizes.MethodCountCheck",
	"ruleset.checks.sizes.MethodLengthCheck",
	"ruleset.checks.sizes.ParameterNumberCheck",

	"ruleset.checks.whitespace.EmptyLineSeparatorCheck",
	"ruleset.checks.whitespace.FileTabCharacterCheck",
	"ruleset.checks.whitespace.NoWhitespaceAfterCheck",
	"ruleset.checks.whitespace.NoWhitespaceBeforeCheck",
	"ruleset.checks.whitespace.OperatorWrapCheck",
	"ruleset.checks.whitespace.SingleSpaceSeparatorCheck",
	"ruleset.checks.whitespace.TrailingWhitespaceCheck",

	"ruleset.filters.SeverityMatchFilter",
	"ruleset.filters.SuppressWithNearbyCommentFilter",
	"ruleset.filters.SuppressionCommentFilter",
	"ruleset.filters.SuppressionFilter",

	"ruleset.filefilters.BeforeExecutionExclusionFileFilter",
}

// builtinEntries expands builtinModules into alias entries: every module is
// reachable by its simple name, and checks also by their name minus the
// suffix.
func builtinEntries() []Entry {
	entries := make([]Entry, 0, 2*len(builtinModules))
	for _, canonical := range builtinModules {
		short := canonical[strings.LastIndex(canonical, ".")+1:]
		entries = append(entries, Entry{Short: short, Canonical: canonical})
		if bare, ok := strings.CutSuffix(short, CheckSuffix); ok && bare != "" {
			entries = append(entries, Entry{Short: bare, Canonical: canonical})
		}
	}
	return entries
}
