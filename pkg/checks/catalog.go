package checks

import (
	"reflect"

	"github.com/arthur-debert/ruleset/pkg/filefilter"
	"github.com/arthur-debert/ruleset/pkg/loader"
	"github.com/arthur-debert/ruleset/pkg/suppression"
)

// Package names of the shipped modules. Prefix searches normally list Root.
const (
	Root        = "ruleset.checks"
	Blocks      = Root + ".blocks"
	Coding      = Root + ".coding"
	Headers     = Root + ".header"
	Imports     = Root + ".imports"
	Metrics     = Root + ".metrics"
	Naming      = Root + ".naming"
	Regexps     = Root + ".regexp"
	Sizes       = Root + ".sizes"
	Whitespace  = Root + ".whitespace"
	Filters     = "ruleset.filters"
	FileFilters = "ruleset.filefilters"
)

// Entry places a module type under a canonical identifier.
type Entry struct {
	Package string
	Name    string
	Type    reflect.Type
}

// ID is the canonical identifier, Package + "." + Name.
func (e Entry) ID() string {
	return e.Package + "." + e.Name
}

func entry(pkg, name string, v any) Entry {
	return Entry{Package: pkg, Name: name, Type: reflect.TypeOf(v)}
}

var catalog = []Entry{
	entry(Root, "FileContentsHolder", fileContentsHolder{}),
	entry(Root, "NewlineAtEndOfFileCheck", NewlineAtEndOfFile{}),
	entry(Root, "TodoCommentCheck", TodoComment{}),
	entry(Root, "TrailingCommentCheck", TrailingComment{}),

	entry(Blocks, "AvoidNestedBlocksCheck", AvoidNestedBlocks{}),
	entry(Blocks, "EmptyBlockCheck", EmptyBlock{}),
	entry(Blocks, "LeftCurlyCheck", LeftCurly{}),
	entry(Blocks, "RightCurlyCheck", RightCurly{}),

	entry(Coding, "DefaultComesLastCheck", DefaultComesLast{}),
	entry(Coding, "EmptyStatementCheck", EmptyStatement{}),
	entry(Coding, "FallThroughCheck", FallThrough{}),
	entry(Coding, "HiddenFieldCheck", HiddenField{}),
	entry(Coding, "IllegalTokenCheck", IllegalToken{}),
	entry(Coding, "IllegalTokenTextCheck", IllegalTokenText{}),
	entry(Coding, "InnerAssignmentCheck", InnerAssignment{}),
	entry(Coding, "MagicNumberCheck", MagicNumber{}),
	entry(Coding, "MissingSwitchDefaultCheck", MissingSwitchDefault{}),
	entry(Coding, "MultipleStringLiteralsCheck", MultipleStringLiterals{}),
	entry(Coding, "NakedReturnCheck", NakedReturn{}),
	entry(Coding, "NestedForDepthCheck", NestedForDepth{}),
	entry(Coding, "NestedIfDepthCheck", NestedIfDepth{}),
	entry(Coding, "OneStatementPerLineCheck", OneStatementPerLine{}),
	entry(Coding, "ParameterAssignmentCheck", ParameterAssignment{}),
	entry(Coding, "ReturnCountCheck", ReturnCount{}),
	entry(Coding, "SimplifyBooleanExpressionCheck", SimplifyBooleanExpression{}),
	entry(Coding, "SimplifyBooleanReturnCheck", SimplifyBooleanReturn{}),
	entry(Coding, "UnnecessaryParenthesesCheck", UnnecessaryParentheses{}),

	entry(Headers, "HeaderCheck", Header{}),
	entry(Headers, "RegexpHeaderCheck", RegexpHeader{}),

	entry(Imports, "AvoidBlankImportCheck", AvoidBlankImport{}),
	entry(Imports, "AvoidDotImportCheck", AvoidDotImport{}),
	entry(Imports, "IllegalImportCheck", IllegalImport{}),
	entry(Imports, "ImportOrderCheck", ImportOrder{}),
	entry(Imports, "RedundantImportCheck", RedundantImport{}),
	entry(Imports, "UnusedImportsCheck", UnusedImports{}),

	entry(Metrics, "BooleanExpressionComplexityCheck", BooleanExpressionComplexity{}),
	entry(Metrics, "CyclomaticComplexityCheck", CyclomaticComplexity{}),
	entry(Metrics, "FanOutComplexityCheck", FanOutComplexity{}),
	entry(Metrics, "NCSSCheck", NCSS{}),
	entry(Metrics, "NPathComplexityCheck", NPathComplexity{}),

	entry(Naming, "AbbreviationAsWordInNameCheck", AbbreviationAsWordInName{}),
	entry(Naming, "ConstantNameCheck", ConstantName{}),
	entry(Naming, "LocalVariableNameCheck", LocalVariableName{}),
	entry(Naming, "MemberNameCheck", MemberName{}),
	entry(Naming, "MethodNameCheck", MethodName{}),
	entry(Naming, "PackageNameCheck", PackageName{}),
	entry(Naming, "ParameterNameCheck", ParameterName{}),
	entry(Naming, "ReceiverNameCheck", ReceiverName{}),
	entry(Naming, "TypeNameCheck", TypeName{}),

	entry(Regexps, "RegexpCheck", Regexp{}),
	entry(Regexps, "RegexpMultilineCheck", RegexpMultiline{}),
	entry(Regexps, "RegexpOnFilenameCheck", RegexpOnFilename{}),
	entry(Regexps, "RegexpSinglelineCheck", RegexpSingleline{}),

	entry(Sizes, "ExecutableStatementCountCheck", ExecutableStatementCount{}),
	entry(Sizes, "FileLengthCheck", FileLength{}),
	entry(Sizes, "FuncLitLengthCheck", FuncLitLength{}),
	entry(Sizes, "LineLengthCheck", LineLength{}),
	entry(Sizes, "MethodCountCheck", MethodCount{}),
	entry(Sizes, "MethodLengthCheck", MethodLength{}),
	entry(Sizes, "ParameterNumberCheck", ParameterNumber{}),

	entry(Whitespace, "EmptyLineSeparatorCheck", EmptyLineSeparator{}),
	entry(Whitespace, "FileTabCharacterCheck", FileTabCharacter{}),
	entry(Whitespace, "NoWhitespaceAfterCheck", NoWhitespaceAfter{}),
	entry(Whitespace, "NoWhitespaceBeforeCheck", NoWhitespaceBefore{}),
	entry(Whitespace, "OperatorWrapCheck", OperatorWrap{}),
	entry(Whitespace, "SingleSpaceSeparatorCheck", SingleSpaceSeparator{}),
	entry(Whitespace, "TrailingWhitespaceCheck", TrailingWhitespace{}),

	entry(Filters, "SeverityMatchFilter", SeverityMatchFilter{}),
	entry(Filters, "SuppressWithNearbyCommentFilter", SuppressWithNearbyCommentFilter{}),
	entry(Filters, "SuppressionCommentFilter", SuppressionCommentFilter{}),
	entry(Filters, "SuppressionFilter", suppression.Filter{}),

	entry(FileFilters, "BeforeExecutionExclusionFileFilter", filefilter.ExclusionFilter{}),
}

// Catalog returns every shipped module.
func Catalog() []Entry {
	return append([]Entry(nil), catalog...)
}

// Register adds every shipped module to l.
func Register(l *loader.TypeLoader) error {
	for _, e := range catalog {
		if err := l.Register(e.ID(), e.Type); err != nil {
			return err
		}
	}
	return nil
}

// NewLoader returns a loader holding the shipped modules.
func NewLoader() (*loader.TypeLoader, error) {
	l := loader.NewTypeLoader()
	if err := Register(l); err != nil {
		return nil, err
	}
	return l, nil
}
