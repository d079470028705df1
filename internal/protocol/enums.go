package protocol

import "codesearch/internal/message"

// AnnotationTypeValue identifies the kind of an annotation. Values are bit flags on the wire.
type AnnotationTypeValue int

const (
	AnnotationBlame            AnnotationTypeValue = 64
	AnnotationCodeFindings     AnnotationTypeValue = 262144
	AnnotationCompiler         AnnotationTypeValue = 128
	AnnotationCoverage         AnnotationTypeValue = 16
	AnnotationDeprecated       AnnotationTypeValue = 8192
	AnnotationFindbugs         AnnotationTypeValue = 512
	AnnotationLangCount        AnnotationTypeValue = 16384
	AnnotationLinkToDefinition AnnotationTypeValue = 1
	AnnotationLinkToURL        AnnotationTypeValue = 2
	AnnotationLint             AnnotationTypeValue = 32
	AnnotationOfflineQueries   AnnotationTypeValue = 32768
	AnnotationOverride         AnnotationTypeValue = 4096
	AnnotationTools            AnnotationTypeValue = 131072
	AnnotationUnknown          AnnotationTypeValue = 0
	AnnotationXrefSignature    AnnotationTypeValue = 4
)

var annotationTypeValueEnum = message.NewEnumType("AnnotationTypeValue",
	message.EnumConstant{Name: "BLAME", Value: int64(AnnotationBlame)},
	message.EnumConstant{Name: "CODE_FINDINGS", Value: int64(AnnotationCodeFindings)},
	message.EnumConstant{Name: "COMPILER", Value: int64(AnnotationCompiler)},
	message.EnumConstant{Name: "COVERAGE", Value: int64(AnnotationCoverage)},
	message.EnumConstant{Name: "DEPRECATED", Value: int64(AnnotationDeprecated)},
	message.EnumConstant{Name: "FINDBUGS", Value: int64(AnnotationFindbugs)},
	message.EnumConstant{Name: "LANG_COUNT", Value: int64(AnnotationLangCount)},
	message.EnumConstant{Name: "LINK_TO_DEFINITION", Value: int64(AnnotationLinkToDefinition)},
	message.EnumConstant{Name: "LINK_TO_URL", Value: int64(AnnotationLinkToURL)},
	message.EnumConstant{Name: "LINT", Value: int64(AnnotationLint)},
	message.EnumConstant{Name: "OFFLINE_QUERIES", Value: int64(AnnotationOfflineQueries)},
	message.EnumConstant{Name: "OVERRIDE", Value: int64(AnnotationOverride)},
	message.EnumConstant{Name: "TOOLS", Value: int64(AnnotationTools)},
	message.EnumConstant{Name: "UNKNOWN", Value: int64(AnnotationUnknown)},
	message.EnumConstant{Name: "XREF_SIGNATURE", Value: int64(AnnotationXrefSignature)},
)

func (v AnnotationTypeValue) String() string { return annotationTypeValueEnum.Symbol(int64(v)) }

// KytheXrefKind is the kind of a cross-reference edge as reported by the Kythe backend.
// XrefCalls and XrefCalledBy are client-side additions that select the call graph.
type KytheXrefKind int

const (
	XrefDefinition    KytheXrefKind = 1
	XrefDeclaration   KytheXrefKind = 2
	XrefReference     KytheXrefKind = 3
	XrefOverrides     KytheXrefKind = 4
	XrefOverriddenBy  KytheXrefKind = 5
	XrefExtends       KytheXrefKind = 6
	XrefExtendedBy    KytheXrefKind = 7
	XrefInstantiation KytheXrefKind = 8
	XrefGenerates     KytheXrefKind = 10
	XrefGeneratedBy   KytheXrefKind = 11
	XrefAnnotates     KytheXrefKind = 12
	XrefAnnotatedBy   KytheXrefKind = 13
	XrefCalls         KytheXrefKind = -100
	XrefCalledBy      KytheXrefKind = -101
)

var kytheXrefKindEnum = message.NewEnumType("KytheXrefKind",
	message.EnumConstant{Name: "DEFINITION", Value: int64(XrefDefinition)},
	message.EnumConstant{Name: "DECLARATION", Value: int64(XrefDeclaration)},
	message.EnumConstant{Name: "REFERENCE", Value: int64(XrefReference)},
	message.EnumConstant{Name: "OVERRIDES", Value: int64(XrefOverrides)},
	message.EnumConstant{Name: "OVERRIDDEN_BY", Value: int64(XrefOverriddenBy)},
	message.EnumConstant{Name: "EXTENDS", Value: int64(XrefExtends)},
	message.EnumConstant{Name: "EXTENDED_BY", Value: int64(XrefExtendedBy)},
	message.EnumConstant{Name: "INSTANTIATION", Value: int64(XrefInstantiation)},
	message.EnumConstant{Name: "GENERATES", Value: int64(XrefGenerates)},
	message.EnumConstant{Name: "GENERATED_BY", Value: int64(XrefGeneratedBy)},
	message.EnumConstant{Name: "ANNOTATES", Value: int64(XrefAnnotates)},
	message.EnumConstant{Name: "ANNOTATED_BY", Value: int64(XrefAnnotatedBy)},
	message.EnumConstant{Name: "CALLS", Value: int64(XrefCalls)},
	message.EnumConstant{Name: "CALLED_BY", Value: int64(XrefCalledBy)},
)

func (v KytheXrefKind) String() string { return kytheXrefKindEnum.Symbol(int64(v)) }

// KytheNodeKind is the kind of a Kythe node.
type KytheNodeKind int

const (
	KytheNodeAbs                    KytheNodeKind = 100
	KytheNodeAbsvar                 KytheNodeKind = 200
	KytheNodeAnchor                 KytheNodeKind = 300
	KytheNodeConstant               KytheNodeKind = 500
	KytheNodeDeprecatedCallable     KytheNodeKind = 400
	KytheNodeDoc                    KytheNodeKind = 550
	KytheNodeFile                   KytheNodeKind = 600
	KytheNodeFunction               KytheNodeKind = 800
	KytheNodeFunctionConstructor    KytheNodeKind = 810
	KytheNodeFunctionDestructor     KytheNodeKind = 820
	KytheNodeInterface              KytheNodeKind = 700
	KytheNodeLookup                 KytheNodeKind = 900
	KytheNodeMacro                  KytheNodeKind = 1000
	KytheNodeMeta                   KytheNodeKind = 1050
	KytheNodeName                   KytheNodeKind = 1100
	KytheNodePackage                KytheNodeKind = 1200
	KytheNodeRecord                 KytheNodeKind = 1300
	KytheNodeRecordClass            KytheNodeKind = 1310
	KytheNodeRecordStruct           KytheNodeKind = 1320
	KytheNodeRecordUnion            KytheNodeKind = 1330
	KytheNodeSum                    KytheNodeKind = 1400
	KytheNodeSumEnum                KytheNodeKind = 1410
	KytheNodeSumEnumClass           KytheNodeKind = 1420
	KytheNodeTalias                 KytheNodeKind = 1500
	KytheNodeTapp                   KytheNodeKind = 1600
	KytheNodeTbuiltin               KytheNodeKind = 1700
	KytheNodeTbuiltinArray          KytheNodeKind = 1705
	KytheNodeTbuiltinBoolean        KytheNodeKind = 1710
	KytheNodeTbuiltinByte           KytheNodeKind = 1715
	KytheNodeTbuiltinChar           KytheNodeKind = 1720
	KytheNodeTbuiltinDouble         KytheNodeKind = 1725
	KytheNodeTbuiltinFloat          KytheNodeKind = 1730
	KytheNodeTbuiltinFn             KytheNodeKind = 1735
	KytheNodeTbuiltinInt            KytheNodeKind = 1740
	KytheNodeTbuiltinLong           KytheNodeKind = 1745
	KytheNodeTbuiltinPtr            KytheNodeKind = 1750
	KytheNodeTbuiltinShort          KytheNodeKind = 1755
	KytheNodeTbuiltinVoid           KytheNodeKind = 1760
	KytheNodeTnominal               KytheNodeKind = 1800
	KytheNodeTsigma                 KytheNodeKind = 1850
	KytheNodeUnresolvedType         KytheNodeKind = 0
	KytheNodeVariable               KytheNodeKind = 1900
	KytheNodeVariableField          KytheNodeKind = 1910
	KytheNodeVariableLocal          KytheNodeKind = 1920
	KytheNodeVariableLocalException KytheNodeKind = 1940
	KytheNodeVariableLocalParameter KytheNodeKind = 1930
	KytheNodeVariableLocalResource  KytheNodeKind = 1950
	KytheNodeVCS                    KytheNodeKind = 2000
)

var kytheNodeKindEnum = message.NewEnumType("KytheNodeKind",
	message.EnumConstant{Name: "ABS", Value: int64(KytheNodeAbs)},
	message.EnumConstant{Name: "ABSVAR", Value: int64(KytheNodeAbsvar)},
	message.EnumConstant{Name: "ANCHOR", Value: int64(KytheNodeAnchor)},
	message.EnumConstant{Name: "CONSTANT", Value: int64(KytheNodeConstant)},
	message.EnumConstant{Name: "DEPRECATED_CALLABLE", Value: int64(KytheNodeDeprecatedCallable)},
	message.EnumConstant{Name: "DOC", Value: int64(KytheNodeDoc)},
	message.EnumConstant{Name: "FILE", Value: int64(KytheNodeFile)},
	message.EnumConstant{Name: "FUNCTION", Value: int64(KytheNodeFunction)},
	message.EnumConstant{Name: "FUNCTION_CONSTRUCTOR", Value: int64(KytheNodeFunctionConstructor)},
	message.EnumConstant{Name: "FUNCTION_DESTRUCTOR", Value: int64(KytheNodeFunctionDestructor)},
	message.EnumConstant{Name: "INTERFACE", Value: int64(KytheNodeInterface)},
	message.EnumConstant{Name: "LOOKUP", Value: int64(KytheNodeLookup)},
	message.EnumConstant{Name: "MACRO", Value: int64(KytheNodeMacro)},
	message.EnumConstant{Name: "META", Value: int64(KytheNodeMeta)},
	message.EnumConstant{Name: "NAME", Value: int64(KytheNodeName)},
	message.EnumConstant{Name: "PACKAGE", Value: int64(KytheNodePackage)},
	message.EnumConstant{Name: "RECORD", Value: int64(KytheNodeRecord)},
	message.EnumConstant{Name: "RECORD_CLASS", Value: int64(KytheNodeRecordClass)},
	message.EnumConstant{Name: "RECORD_STRUCT", Value: int64(KytheNodeRecordStruct)},
	message.EnumConstant{Name: "RECORD_UNION", Value: int64(KytheNodeRecordUnion)},
	message.EnumConstant{Name: "SUM", Value: int64(KytheNodeSum)},
	message.EnumConstant{Name: "SUM_ENUM", Value: int64(KytheNodeSumEnum)},
	message.EnumConstant{Name: "SUM_ENUM_CLASS", Value: int64(KytheNodeSumEnumClass)},
	message.EnumConstant{Name: "TALIAS", Value: int64(KytheNodeTalias)},
	message.EnumConstant{Name: "TAPP", Value: int64(KytheNodeTapp)},
	message.EnumConstant{Name: "TBUILTIN", Value: int64(KytheNodeTbuiltin)},
	message.EnumConstant{Name: "TBUILTIN_ARRAY", Value: int64(KytheNodeTbuiltinArray)},
	message.EnumConstant{Name: "TBUILTIN_BOOLEAN", Value: int64(KytheNodeTbuiltinBoolean)},
	message.EnumConstant{Name: "TBUILTIN_BYTE", Value: int64(KytheNodeTbuiltinByte)},
	message.EnumConstant{Name: "TBUILTIN_CHAR", Value: int64(KytheNodeTbuiltinChar)},
	message.EnumConstant{Name: "TBUILTIN_DOUBLE", Value: int64(KytheNodeTbuiltinDouble)},
	message.EnumConstant{Name: "TBUILTIN_FLOAT", Value: int64(KytheNodeTbuiltinFloat)},
	message.EnumConstant{Name: "TBUILTIN_FN", Value: int64(KytheNodeTbuiltinFn)},
	message.EnumConstant{Name: "TBUILTIN_INT", Value: int64(KytheNodeTbuiltinInt)},
	message.EnumConstant{Name: "TBUILTIN_LONG", Value: int64(KytheNodeTbuiltinLong)},
	message.EnumConstant{Name: "TBUILTIN_PTR", Value: int64(KytheNodeTbuiltinPtr)},
	message.EnumConstant{Name: "TBUILTIN_SHORT", Value: int64(KytheNodeTbuiltinShort)},
	message.EnumConstant{Name: "TBUILTIN_VOID", Value: int64(KytheNodeTbuiltinVoid)},
	message.EnumConstant{Name: "TNOMINAL", Value: int64(KytheNodeTnominal)},
	message.EnumConstant{Name: "TSIGMA", Value: int64(KytheNodeTsigma)},
	message.EnumConstant{Name: "UNRESOLVED_TYPE", Value: int64(KytheNodeUnresolvedType)},
	message.EnumConstant{Name: "VARIABLE", Value: int64(KytheNodeVariable)},
	message.EnumConstant{Name: "VARIABLE_FIELD", Value: int64(KytheNodeVariableField)},
	message.EnumConstant{Name: "VARIABLE_LOCAL", Value: int64(KytheNodeVariableLocal)},
	message.EnumConstant{Name: "VARIABLE_LOCAL_EXCEPTION", Value: int64(KytheNodeVariableLocalException)},
	message.EnumConstant{Name: "VARIABLE_LOCAL_PARAMETER", Value: int64(KytheNodeVariableLocalParameter)},
	message.EnumConstant{Name: "VARIABLE_LOCAL_RESOURCE", Value: int64(KytheNodeVariableLocalResource)},
	message.EnumConstant{Name: "VCS", Value: int64(KytheNodeVCS)},
)

func (v KytheNodeKind) String() string { return kytheNodeKindEnum.Symbol(int64(v)) }

type FileType int

const (
	FileTypeBinary  FileType = 5
	FileTypeCode    FileType = 1
	FileTypeData    FileType = 3
	FileTypeDir     FileType = 4
	FileTypeDoc     FileType = 2
	FileTypeSymlink FileType = 6
	FileTypeUnknown FileType = 0
)

var fileTypeEnum = message.NewEnumType("FileType",
	message.EnumConstant{Name: "BINARY", Value: int64(FileTypeBinary)},
	message.EnumConstant{Name: "CODE", Value: int64(FileTypeCode)},
	message.EnumConstant{Name: "DATA", Value: int64(FileTypeData)},
	message.EnumConstant{Name: "DIR", Value: int64(FileTypeDir)},
	message.EnumConstant{Name: "DOC", Value: int64(FileTypeDoc)},
	message.EnumConstant{Name: "SYMLINK", Value: int64(FileTypeSymlink)},
	message.EnumConstant{Name: "UNKNOWN", Value: int64(FileTypeUnknown)},
)

func (v FileType) String() string { return fileTypeEnum.Symbol(int64(v)) }

// CodeBlockType is the kind of an outline code block. CodeBlockRoot is the synthetic
// root of a file outline.
type CodeBlockType int

const (
	CodeBlockAllocation           CodeBlockType = 49
	CodeBlockAnonymousFunction    CodeBlockType = 15
	CodeBlockBuildArgument        CodeBlockType = 25
	CodeBlockBuildBinary          CodeBlockType = 21
	CodeBlockBuildGenerator       CodeBlockType = 24
	CodeBlockBuildLibrary         CodeBlockType = 23
	CodeBlockBuildRule            CodeBlockType = 20
	CodeBlockBuildTest            CodeBlockType = 22
	CodeBlockBuildVariable        CodeBlockType = 26
	CodeBlockClass                CodeBlockType = 1
	CodeBlockComment              CodeBlockType = 13
	CodeBlockDefineConst          CodeBlockType = 40
	CodeBlockDefineMacro          CodeBlockType = 41
	CodeBlockEnum                 CodeBlockType = 4
	CodeBlockEnumConstant         CodeBlockType = 14
	CodeBlockError                CodeBlockType = 0
	CodeBlockField                CodeBlockType = 7
	CodeBlockFunction             CodeBlockType = 8
	CodeBlockGroup                CodeBlockType = 51
	CodeBlockInterface            CodeBlockType = 2
	CodeBlockJob                  CodeBlockType = 47
	CodeBlockJSAssignment         CodeBlockType = 38
	CodeBlockJSConst              CodeBlockType = 31
	CodeBlockJSFunctionAssignment CodeBlockType = 39
	CodeBlockJSFunctionLiteral    CodeBlockType = 37
	CodeBlockJSGetter             CodeBlockType = 35
	CodeBlockJSGoogProvide        CodeBlockType = 32
	CodeBlockJSGoogRequire        CodeBlockType = 33
	CodeBlockJSLiteral            CodeBlockType = 36
	CodeBlockJSSetter             CodeBlockType = 34
	CodeBlockJSVar                CodeBlockType = 30
	CodeBlockMethod               CodeBlockType = 6
	CodeBlockNamespace            CodeBlockType = 11
	CodeBlockPackage              CodeBlockType = 17
	CodeBlockProperty             CodeBlockType = 12
	CodeBlockReserved27           CodeBlockType = 27
	CodeBlockReserved28           CodeBlockType = 28
	CodeBlockReserved29           CodeBlockType = 29
	CodeBlockRoot                 CodeBlockType = -1
	CodeBlockScope                CodeBlockType = 50
	CodeBlockService              CodeBlockType = 48
	CodeBlockStruct               CodeBlockType = 3
	CodeBlockTemplate             CodeBlockType = 46
	CodeBlockTest                 CodeBlockType = 16
	CodeBlockTypedef              CodeBlockType = 10
	CodeBlockUnion                CodeBlockType = 5
	CodeBlockVariable             CodeBlockType = 9
	CodeBlockXMLTag               CodeBlockType = 45
)

var codeBlockTypeEnum = message.NewEnumType("CodeBlockType",
	message.EnumConstant{Name: "ALLOCATION", Value: int64(CodeBlockAllocation)},
	message.EnumConstant{Name: "ANONYMOUS_FUNCTION", Value: int64(CodeBlockAnonymousFunction)},
	message.EnumConstant{Name: "BUILD_ARGUMENT", Value: int64(CodeBlockBuildArgument)},
	message.EnumConstant{Name: "BUILD_BINARY", Value: int64(CodeBlockBuildBinary)},
	message.EnumConstant{Name: "BUILD_GENERATOR", Value: int64(CodeBlockBuildGenerator)},
	message.EnumConstant{Name: "BUILD_LIBRARY", Value: int64(CodeBlockBuildLibrary)},
	message.EnumConstant{Name: "BUILD_RULE", Value: int64(CodeBlockBuildRule)},
	message.EnumConstant{Name: "BUILD_TEST", Value: int64(CodeBlockBuildTest)},
	message.EnumConstant{Name: "BUILD_VARIABLE", Value: int64(CodeBlockBuildVariable)},
	message.EnumConstant{Name: "CLASS", Value: int64(CodeBlockClass)},
	message.EnumConstant{Name: "COMMENT", Value: int64(CodeBlockComment)},
	message.EnumConstant{Name: "DEFINE_CONST", Value: int64(CodeBlockDefineConst)},
	message.EnumConstant{Name: "DEFINE_MACRO", Value: int64(CodeBlockDefineMacro)},
	message.EnumConstant{Name: "ENUM", Value: int64(CodeBlockEnum)},
	message.EnumConstant{Name: "ENUM_CONSTANT", Value: int64(CodeBlockEnumConstant)},
	message.EnumConstant{Name: "ERROR", Value: int64(CodeBlockError)},
	message.EnumConstant{Name: "FIELD", Value: int64(CodeBlockField)},
	message.EnumConstant{Name: "FUNCTION", Value: int64(CodeBlockFunction)},
	message.EnumConstant{Name: "GROUP", Value: int64(CodeBlockGroup)},
	message.EnumConstant{Name: "INTERFACE", Value: int64(CodeBlockInterface)},
	message.EnumConstant{Name: "JOB", Value: int64(CodeBlockJob)},
	message.EnumConstant{Name: "JS_ASSIGNMENT", Value: int64(CodeBlockJSAssignment)},
	message.EnumConstant{Name: "JS_CONST", Value: int64(CodeBlockJSConst)},
	message.EnumConstant{Name: "JS_FUNCTION_ASSIGNMENT", Value: int64(CodeBlockJSFunctionAssignment)},
	message.EnumConstant{Name: "JS_FUNCTION_LITERAL", Value: int64(CodeBlockJSFunctionLiteral)},
	message.EnumConstant{Name: "JS_GETTER", Value: int64(CodeBlockJSGetter)},
	message.EnumConstant{Name: "JS_GOOG_PROVIDE", Value: int64(CodeBlockJSGoogProvide)},
	message.EnumConstant{Name: "JS_GOOG_REQUIRE", Value: int64(CodeBlockJSGoogRequire)},
	message.EnumConstant{Name: "JS_LITERAL", Value: int64(CodeBlockJSLiteral)},
	message.EnumConstant{Name: "JS_SETTER", Value: int64(CodeBlockJSSetter)},
	message.EnumConstant{Name: "JS_VAR", Value: int64(CodeBlockJSVar)},
	message.EnumConstant{Name: "METHOD", Value: int64(CodeBlockMethod)},
	message.EnumConstant{Name: "NAMESPACE", Value: int64(CodeBlockNamespace)},
	message.EnumConstant{Name: "PACKAGE", Value: int64(CodeBlockPackage)},
	message.EnumConstant{Name: "PROPERTY", Value: int64(CodeBlockProperty)},
	message.EnumConstant{Name: "RESERVED_27", Value: int64(CodeBlockReserved27)},
	message.EnumConstant{Name: "RESERVED_28", Value: int64(CodeBlockReserved28)},
	message.EnumConstant{Name: "RESERVED_29", Value: int64(CodeBlockReserved29)},
	message.EnumConstant{Name: "ROOT", Value: int64(CodeBlockRoot)},
	message.EnumConstant{Name: "SCOPE", Value: int64(CodeBlockScope)},
	message.EnumConstant{Name: "SERVICE", Value: int64(CodeBlockService)},
	message.EnumConstant{Name: "STRUCT", Value: int64(CodeBlockStruct)},
	message.EnumConstant{Name: "TEMPLATE", Value: int64(CodeBlockTemplate)},
	message.EnumConstant{Name: "TEST", Value: int64(CodeBlockTest)},
	message.EnumConstant{Name: "TYPEDEF", Value: int64(CodeBlockTypedef)},
	message.EnumConstant{Name: "UNION", Value: int64(CodeBlockUnion)},
	message.EnumConstant{Name: "VARIABLE", Value: int64(CodeBlockVariable)},
	message.EnumConstant{Name: "XML_TAG", Value: int64(CodeBlockXMLTag)},
)

func (v CodeBlockType) String() string { return codeBlockTypeEnum.Symbol(int64(v)) }

// FormatType is the kind of a formatting range inside annotated text.
type FormatType int

const (
	FormatCarriageReturn       FormatType = 22
	FormatCLLink               FormatType = 33
	FormatCodesearchLink       FormatType = 36
	FormatExternalLink         FormatType = 31
	FormatIncludeQuery         FormatType = 35
	FormatLine                 FormatType = 1
	FormatQueryMatch           FormatType = 40
	FormatSnippetQueryMatch    FormatType = 41
	FormatSyntaxClass          FormatType = 8
	FormatSyntaxComment        FormatType = 5
	FormatSyntaxConst          FormatType = 9
	FormatSyntaxDeprecated     FormatType = 11
	FormatSyntaxDocName        FormatType = 13
	FormatSyntaxDocTag         FormatType = 12
	FormatSyntaxEscapeSequence FormatType = 10
	FormatSyntaxKeyword        FormatType = 3
	FormatSyntaxKeywordStrong  FormatType = 15
	FormatSyntaxMacro          FormatType = 7
	FormatSyntaxMarkupBold     FormatType = 51
	FormatSyntaxMarkupCode     FormatType = 54
	FormatSyntaxMarkupEntity   FormatType = 50
	FormatSyntaxMarkupItalic   FormatType = 52
	FormatSyntaxMarkupLink     FormatType = 53
	FormatSyntaxNumber         FormatType = 6
	FormatSyntaxPlain          FormatType = 2
	FormatSyntaxString         FormatType = 4
	FormatSyntaxTaskTag        FormatType = 14
	FormatTabs                 FormatType = 21
	FormatTrailingSpace        FormatType = 20
	FormatUnknownType          FormatType = 0
	FormatUserNameLink         FormatType = 32
)

var formatTypeEnum = message.NewEnumType("FormatType",
	message.EnumConstant{Name: "CARRIAGE_RETURN", Value: int64(FormatCarriageReturn)},
	message.EnumConstant{Name: "CL_LINK", Value: int64(FormatCLLink)},
	message.EnumConstant{Name: "CODESEARCH_LINK", Value: int64(FormatCodesearchLink)},
	message.EnumConstant{Name: "EXTERNAL_LINK", Value: int64(FormatExternalLink)},
	message.EnumConstant{Name: "INCLUDE_QUERY", Value: int64(FormatIncludeQuery)},
	message.EnumConstant{Name: "LINE", Value: int64(FormatLine)},
	message.EnumConstant{Name: "QUERY_MATCH", Value: int64(FormatQueryMatch)},
	message.EnumConstant{Name: "SNIPPET_QUERY_MATCH", Value: int64(FormatSnippetQueryMatch)},
	message.EnumConstant{Name: "SYNTAX_CLASS", Value: int64(FormatSyntaxClass)},
	message.EnumConstant{Name: "SYNTAX_COMMENT", Value: int64(FormatSyntaxComment)},
	message.EnumConstant{Name: "SYNTAX_CONST", Value: int64(FormatSyntaxConst)},
	message.EnumConstant{Name: "SYNTAX_DEPRECATED", Value: int64(FormatSyntaxDeprecated)},
	message.EnumConstant{Name: "SYNTAX_DOC_NAME", Value: int64(FormatSyntaxDocName)},
	message.EnumConstant{Name: "SYNTAX_DOC_TAG", Value: int64(FormatSyntaxDocTag)},
	message.EnumConstant{Name: "SYNTAX_ESCAPE_SEQUENCE", Value: int64(FormatSyntaxEscapeSequence)},
	message.EnumConstant{Name: "SYNTAX_KEYWORD", Value: int64(FormatSyntaxKeyword)},
	message.EnumConstant{Name: "SYNTAX_KEYWORD_STRONG", Value: int64(FormatSyntaxKeywordStrong)},
	message.EnumConstant{Name: "SYNTAX_MACRO", Value: int64(FormatSyntaxMacro)},
	message.EnumConstant{Name: "SYNTAX_MARKUP_BOLD", Value: int64(FormatSyntaxMarkupBold)},
	message.EnumConstant{Name: "SYNTAX_MARKUP_CODE", Value: int64(FormatSyntaxMarkupCode)},
	message.EnumConstant{Name: "SYNTAX_MARKUP_ENTITY", Value: int64(FormatSyntaxMarkupEntity)},
	message.EnumConstant{Name: "SYNTAX_MARKUP_ITALIC", Value: int64(FormatSyntaxMarkupItalic)},
	message.EnumConstant{Name: "SYNTAX_MARKUP_LINK", Value: int64(FormatSyntaxMarkupLink)},
	message.EnumConstant{Name: "SYNTAX_NUMBER", Value: int64(FormatSyntaxNumber)},
	message.EnumConstant{Name: "SYNTAX_PLAIN", Value: int64(FormatSyntaxPlain)},
	message.EnumConstant{Name: "SYNTAX_STRING", Value: int64(FormatSyntaxString)},
	message.EnumConstant{Name: "SYNTAX_TASK_TAG", Value: int64(FormatSyntaxTaskTag)},
	message.EnumConstant{Name: "TABS", Value: int64(FormatTabs)},
	message.EnumConstant{Name: "TRAILING_SPACE", Value: int64(FormatTrailingSpace)},
	message.EnumConstant{Name: "UNKNOWN_TYPE", Value: int64(FormatUnknownType)},
	message.EnumConstant{Name: "USER_NAME_LINK", Value: int64(FormatUserNameLink)},
)

func (v FormatType) String() string { return formatTypeEnum.Symbol(int64(v)) }

// NodeEnumKind is the node kind used by the legacy backend.
type NodeEnumKind int

const (
	LegacyNodeAliasJoin            NodeEnumKind = 9100
	LegacyNodeAnnotation           NodeEnumKind = 900
	LegacyNodeArray                NodeEnumKind = 5700
	LegacyNodeBigfloat             NodeEnumKind = 3000
	LegacyNodeBigint               NodeEnumKind = 2900
	LegacyNodeBoolean              NodeEnumKind = 2000
	LegacyNodeChannel              NodeEnumKind = 6700
	LegacyNodeChar                 NodeEnumKind = 2100
	LegacyNodeClass                NodeEnumKind = 500
	LegacyNodeComment              NodeEnumKind = 9400
	LegacyNodeCommunication        NodeEnumKind = 3850
	LegacyNodeComplex              NodeEnumKind = 2800
	LegacyNodeConstructor          NodeEnumKind = 1200
	LegacyNodeConstType            NodeEnumKind = 5400
	LegacyNodeDefDeclJoin          NodeEnumKind = 9000
	LegacyNodeDelimiter            NodeEnumKind = 10000
	LegacyNodeDiagnostic           NodeEnumKind = 4100
	LegacyNodeDirectory            NodeEnumKind = 4000
	LegacyNodeDocumentation        NodeEnumKind = 9800
	LegacyNodeDocumentationTag     NodeEnumKind = 9900
	LegacyNodeDynamicType          NodeEnumKind = 9300
	LegacyNodeEnum                 NodeEnumKind = 700
	LegacyNodeEnumConstant         NodeEnumKind = 800
	LegacyNodeField                NodeEnumKind = 1500
	LegacyNodeFile                 NodeEnumKind = 3900
	LegacyNodeFixedPoint           NodeEnumKind = 2600
	LegacyNodeFloat                NodeEnumKind = 2500
	LegacyNodeForwardDeclaration   NodeEnumKind = 5300
	LegacyNodeFunction             NodeEnumKind = 1000
	LegacyNodeFunctionType         NodeEnumKind = 10200
	LegacyNodeImport               NodeEnumKind = 8200
	LegacyNodeIndexInfo            NodeEnumKind = 31337
	LegacyNodeInstance             NodeEnumKind = 4600
	LegacyNodeInteger              NodeEnumKind = 2400
	LegacyNodeInterface            NodeEnumKind = 600
	LegacyNodeLabel                NodeEnumKind = 11600
	LegacyNodeList                 NodeEnumKind = 6300
	LegacyNodeLocal                NodeEnumKind = 1600
	LegacyNodeLost                 NodeEnumKind = 9600
	LegacyNodeMap                  NodeEnumKind = 6000
	LegacyNodeMarkupAttribute      NodeEnumKind = 11300
	LegacyNodeMarkupTag            NodeEnumKind = 11200
	LegacyNodeMatrix               NodeEnumKind = 5800
	LegacyNodeMethod               NodeEnumKind = 1100
	LegacyNodeModule               NodeEnumKind = 300
	LegacyNodeName                 NodeEnumKind = 3300
	LegacyNodeNamespace            NodeEnumKind = 100
	LegacyNodeNullType             NodeEnumKind = 7300
	LegacyNodeNumber               NodeEnumKind = 3100
	LegacyNodeObject               NodeEnumKind = 4500
	LegacyNodeOpaque               NodeEnumKind = 6500
	LegacyNodeOptionType           NodeEnumKind = 5500
	LegacyNodePackage              NodeEnumKind = 200
	LegacyNodePackageJoin          NodeEnumKind = 9200
	LegacyNodeParameter            NodeEnumKind = 1700
	LegacyNodeParametricType       NodeEnumKind = 5600
	LegacyNodePointer              NodeEnumKind = 5000
	LegacyNodeProperty             NodeEnumKind = 1900
	LegacyNodeQueue                NodeEnumKind = 6400
	LegacyNodeRational             NodeEnumKind = 2700
	LegacyNodeReferenceType        NodeEnumKind = 5100
	LegacyNodeRegexp               NodeEnumKind = 2300
	LegacyNodeRestrictionType      NodeEnumKind = 10100
	LegacyNodeRule                 NodeEnumKind = 8100
	LegacyNodeSearchableIdentifier NodeEnumKind = 11500
	LegacyNodeSearchableName       NodeEnumKind = 9500
	LegacyNodeSet                  NodeEnumKind = 5900
	LegacyNodeString               NodeEnumKind = 2200
	LegacyNodeStruct               NodeEnumKind = 400
	LegacyNodeSymbol               NodeEnumKind = 3200
	LegacyNodeTagName              NodeEnumKind = 11100
	LegacyNodeTarget               NodeEnumKind = 8000
	LegacyNodeTemplate             NodeEnumKind = 1400
	LegacyNodeText                 NodeEnumKind = 9700
	LegacyNodeTextMacro            NodeEnumKind = 1300
	LegacyNodeThread               NodeEnumKind = 6600
	LegacyNodeTuple                NodeEnumKind = 6100
	LegacyNodeTypeAlias            NodeEnumKind = 5200
	LegacyNodeTypeDescriptor       NodeEnumKind = 11400
	LegacyNodeTypeSpecialization   NodeEnumKind = 7000
	LegacyNodeTypeVariable         NodeEnumKind = 7100
	LegacyNodeTypeVariableType     NodeEnumKind = 10400
	LegacyNodeUnion                NodeEnumKind = 6200
	LegacyNodeUnitType             NodeEnumKind = 6900
	LegacyNodeUnresolvedType       NodeEnumKind = 404
	LegacyNodeUsage                NodeEnumKind = 3800
	LegacyNodeUserType             NodeEnumKind = 10300
	LegacyNodeValue                NodeEnumKind = 3400
	LegacyNodeVariable             NodeEnumKind = 1800
	LegacyNodeVariadicType         NodeEnumKind = 7200
	LegacyNodeVoidType             NodeEnumKind = 6800
)

var nodeEnumKindEnum = message.NewEnumType("NodeEnumKind",
	message.EnumConstant{Name: "ALIAS_JOIN", Value: int64(LegacyNodeAliasJoin)},
	message.EnumConstant{Name: "ANNOTATION", Value: int64(LegacyNodeAnnotation)},
	message.EnumConstant{Name: "ARRAY", Value: int64(LegacyNodeArray)},
	message.EnumConstant{Name: "BIGFLOAT", Value: int64(LegacyNodeBigfloat)},
	message.EnumConstant{Name: "BIGINT", Value: int64(LegacyNodeBigint)},
	message.EnumConstant{Name: "BOOLEAN", Value: int64(LegacyNodeBoolean)},
	message.EnumConstant{Name: "CHANNEL", Value: int64(LegacyNodeChannel)},
	message.EnumConstant{Name: "CHAR", Value: int64(LegacyNodeChar)},
	message.EnumConstant{Name: "CLASS", Value: int64(LegacyNodeClass)},
	message.EnumConstant{Name: "COMMENT", Value: int64(LegacyNodeComment)},
	message.EnumConstant{Name: "COMMUNICATION", Value: int64(LegacyNodeCommunication)},
	message.EnumConstant{Name: "COMPLEX", Value: int64(LegacyNodeComplex)},
	message.EnumConstant{Name: "CONSTRUCTOR", Value: int64(LegacyNodeConstructor)},
	message.EnumConstant{Name: "CONST_TYPE", Value: int64(LegacyNodeConstType)},
	message.EnumConstant{Name: "DEF_DECL_JOIN", Value: int64(LegacyNodeDefDeclJoin)},
	message.EnumConstant{Name: "DELIMITER", Value: int64(LegacyNodeDelimiter)},
	message.EnumConstant{Name: "DIAGNOSTIC", Value: int64(LegacyNodeDiagnostic)},
	message.EnumConstant{Name: "DIRECTORY", Value: int64(LegacyNodeDirectory)},
	message.EnumConstant{Name: "DOCUMENTATION", Value: int64(LegacyNodeDocumentation)},
	message.EnumConstant{Name: "DOCUMENTATION_TAG", Value: int64(LegacyNodeDocumentationTag)},
	message.EnumConstant{Name: "DYNAMIC_TYPE", Value: int64(LegacyNodeDynamicType)},
	message.EnumConstant{Name: "ENUM", Value: int64(LegacyNodeEnum)},
	message.EnumConstant{Name: "ENUM_CONSTANT", Value: int64(LegacyNodeEnumConstant)},
	message.EnumConstant{Name: "FIELD", Value: int64(LegacyNodeField)},
	message.EnumConstant{Name: "FILE", Value: int64(LegacyNodeFile)},
	message.EnumConstant{Name: "FIXED_POINT", Value: int64(LegacyNodeFixedPoint)},
	message.EnumConstant{Name: "FLOAT", Value: int64(LegacyNodeFloat)},
	message.EnumConstant{Name: "FORWARD_DECLARATION", Value: int64(LegacyNodeForwardDeclaration)},
	message.EnumConstant{Name: "FUNCTION", Value: int64(LegacyNodeFunction)},
	message.EnumConstant{Name: "FUNCTION_TYPE", Value: int64(LegacyNodeFunctionType)},
	message.EnumConstant{Name: "IMPORT", Value: int64(LegacyNodeImport)},
	message.EnumConstant{Name: "INDEX_INFO", Value: int64(LegacyNodeIndexInfo)},
	message.EnumConstant{Name: "INSTANCE", Value: int64(LegacyNodeInstance)},
	message.EnumConstant{Name: "INTEGER", Value: int64(LegacyNodeInteger)},
	message.EnumConstant{Name: "INTERFACE", Value: int64(LegacyNodeInterface)},
	message.EnumConstant{Name: "LABEL", Value: int64(LegacyNodeLabel)},
	message.EnumConstant{Name: "LIST", Value: int64(LegacyNodeList)},
	message.EnumConstant{Name: "LOCAL", Value: int64(LegacyNodeLocal)},
	message.EnumConstant{Name: "LOST", Value: int64(LegacyNodeLost)},
	message.EnumConstant{Name: "MAP", Value: int64(LegacyNodeMap)},
	message.EnumConstant{Name: "MARKUP_ATTRIBUTE", Value: int64(LegacyNodeMarkupAttribute)},
	message.EnumConstant{Name: "MARKUP_TAG", Value: int64(LegacyNodeMarkupTag)},
	message.EnumConstant{Name: "MATRIX", Value: int64(LegacyNodeMatrix)},
	message.EnumConstant{Name: "METHOD", Value: int64(LegacyNodeMethod)},
	message.EnumConstant{Name: "MODULE", Value: int64(LegacyNodeModule)},
	message.EnumConstant{Name: "NAME", Value: int64(LegacyNodeName)},
	message.EnumConstant{Name: "NAMESPACE", Value: int64(LegacyNodeNamespace)},
	message.EnumConstant{Name: "NULL_TYPE", Value: int64(LegacyNodeNullType)},
	message.EnumConstant{Name: "NUMBER", Value: int64(LegacyNodeNumber)},
	message.EnumConstant{Name: "OBJECT", Value: int64(LegacyNodeObject)},
	message.EnumConstant{Name: "OPAQUE", Value: int64(LegacyNodeOpaque)},
	message.EnumConstant{Name: "OPTION_TYPE", Value: int64(LegacyNodeOptionType)},
	message.EnumConstant{Name: "PACKAGE", Value: int64(LegacyNodePackage)},
	message.EnumConstant{Name: "PACKAGE_JOIN", Value: int64(LegacyNodePackageJoin)},
	message.EnumConstant{Name: "PARAMETER", Value: int64(LegacyNodeParameter)},
	message.EnumConstant{Name: "PARAMETRIC_TYPE", Value: int64(LegacyNodeParametricType)},
	message.EnumConstant{Name: "POINTER", Value: int64(LegacyNodePointer)},
	message.EnumConstant{Name: "PROPERTY", Value: int64(LegacyNodeProperty)},
	message.EnumConstant{Name: "QUEUE", Value: int64(LegacyNodeQueue)},
	message.EnumConstant{Name: "RATIONAL", Value: int64(LegacyNodeRational)},
	message.EnumConstant{Name: "REFERENCE_TYPE", Value: int64(LegacyNodeReferenceType)},
	message.EnumConstant{Name: "REGEXP", Value: int64(LegacyNodeRegexp)},
	message.EnumConstant{Name: "RESTRICTION_TYPE", Value: int64(LegacyNodeRestrictionType)},
	message.EnumConstant{Name: "RULE", Value: int64(LegacyNodeRule)},
	message.EnumConstant{Name: "SEARCHABLE_IDENTIFIER", Value: int64(LegacyNodeSearchableIdentifier)},
	message.EnumConstant{Name: "SEARCHABLE_NAME", Value: int64(LegacyNodeSearchableName)},
	message.EnumConstant{Name: "SET", Value: int64(LegacyNodeSet)},
	message.EnumConstant{Name: "STRING", Value: int64(LegacyNodeString)},
	message.EnumConstant{Name: "STRUCT", Value: int64(LegacyNodeStruct)},
	message.EnumConstant{Name: "SYMBOL", Value: int64(LegacyNodeSymbol)},
	message.EnumConstant{Name: "TAG_NAME", Value: int64(LegacyNodeTagName)},
	message.EnumConstant{Name: "TARGET", Value: int64(LegacyNodeTarget)},
	message.EnumConstant{Name: "TEMPLATE", Value: int64(LegacyNodeTemplate)},
	message.EnumConstant{Name: "TEXT", Value: int64(LegacyNodeText)},
	message.EnumConstant{Name: "TEXT_MACRO", Value: int64(LegacyNodeTextMacro)},
	message.EnumConstant{Name: "THREAD", Value: int64(LegacyNodeThread)},
	message.EnumConstant{Name: "TUPLE", Value: int64(LegacyNodeTuple)},
	message.EnumConstant{Name: "TYPE_ALIAS", Value: int64(LegacyNodeTypeAlias)},
	message.EnumConstant{Name: "TYPE_DESCRIPTOR", Value: int64(LegacyNodeTypeDescriptor)},
	message.EnumConstant{Name: "TYPE_SPECIALIZATION", Value: int64(LegacyNodeTypeSpecialization)},
	message.EnumConstant{Name: "TYPE_VARIABLE", Value: int64(LegacyNodeTypeVariable)},
	message.EnumConstant{Name: "TYPE_VARIABLE_TYPE", Value: int64(LegacyNodeTypeVariableType)},
	message.EnumConstant{Name: "UNION", Value: int64(LegacyNodeUnion)},
	message.EnumConstant{Name: "UNIT_TYPE", Value: int64(LegacyNodeUnitType)},
	message.EnumConstant{Name: "UNRESOLVED_TYPE", Value: int64(LegacyNodeUnresolvedType)},
	message.EnumConstant{Name: "USAGE", Value: int64(LegacyNodeUsage)},
	message.EnumConstant{Name: "USER_TYPE", Value: int64(LegacyNodeUserType)},
	message.EnumConstant{Name: "VALUE", Value: int64(LegacyNodeValue)},
	message.EnumConstant{Name: "VARIABLE", Value: int64(LegacyNodeVariable)},
	message.EnumConstant{Name: "VARIADIC_TYPE", Value: int64(LegacyNodeVariadicType)},
	message.EnumConstant{Name: "VOID_TYPE", Value: int64(LegacyNodeVoidType)},
)

func (v NodeEnumKind) String() string { return nodeEnumKindEnum.Symbol(int64(v)) }

// EdgeEnumKind is the edge kind used by the legacy backend. Its values live in a
// different numeric space from KytheXrefKind.
type EdgeEnumKind int

const (
	EdgeAllowedAccessTo      EdgeEnumKind = 4500
	EdgeAnnotatedWith        EdgeEnumKind = 5000
	EdgeAnnotationOf         EdgeEnumKind = 5100
	EdgeBaseType             EdgeEnumKind = 1300
	EdgeBelongsToNamespace   EdgeEnumKind = 7200
	EdgeBelongsToPackage     EdgeEnumKind = 6900
	EdgeCall                 EdgeEnumKind = 2200
	EdgeCalledAt             EdgeEnumKind = 2300
	EdgeCallgraphFrom        EdgeEnumKind = 4700
	EdgeCallgraphTo          EdgeEnumKind = 4600
	EdgeCapturedBy           EdgeEnumKind = 1200
	EdgeCaptures             EdgeEnumKind = 1100
	EdgeCatches              EdgeEnumKind = 6400
	EdgeCaughtBy             EdgeEnumKind = 6500
	EdgeChannelUsedBy        EdgeEnumKind = 2351
	EdgeChild                EdgeEnumKind = 5300
	EdgeCommentInFile        EdgeEnumKind = 7400
	EdgeComposingType        EdgeEnumKind = 1400
	EdgeConsumedBy           EdgeEnumKind = 4100
	EdgeContainsComment      EdgeEnumKind = 7500
	EdgeContainsDeclaration  EdgeEnumKind = 5800
	EdgeContainsUsage        EdgeEnumKind = 6000
	EdgeDeclarationInFile    EdgeEnumKind = 5900
	EdgeDeclarationOf        EdgeEnumKind = 3200
	EdgeDeclaredBy           EdgeEnumKind = 400
	EdgeDeclares             EdgeEnumKind = 300
	EdgeDefinitionOf         EdgeEnumKind = 3400
	EdgeDiagnosticOf         EdgeEnumKind = 5400
	EdgeDirectlyInheritedBy  EdgeEnumKind = 1060
	EdgeDirectlyInherits     EdgeEnumKind = 1050
	EdgeDirectlyOverriddenBy EdgeEnumKind = 860
	EdgeDirectlyOverrides    EdgeEnumKind = 850
	EdgeDocumentedWith       EdgeEnumKind = 7700
	EdgeDocuments            EdgeEnumKind = 7600
	EdgeEnclosedUsage        EdgeEnumKind = 4900
	EdgeExtendedBy           EdgeEnumKind = 200
	EdgeExtends              EdgeEnumKind = 100
	EdgeGeneratedBy          EdgeEnumKind = 3100
	EdgeGenerates            EdgeEnumKind = 3000
	EdgeGeneratesName        EdgeEnumKind = 3150
	EdgeHasDeclaration       EdgeEnumKind = 3300
	EdgeHasDefinition        EdgeEnumKind = 3500
	EdgeHasDiagnostic        EdgeEnumKind = 5500
	EdgeHasFigment           EdgeEnumKind = 9200
	EdgeHasIdentifier        EdgeEnumKind = 9400
	EdgeHasInput             EdgeEnumKind = 4000
	EdgeHasOutput            EdgeEnumKind = 4200
	EdgeHasProperty          EdgeEnumKind = 2800
	EdgeHasSelection         EdgeEnumKind = 10900
	EdgeHasType              EdgeEnumKind = 1800
	EdgeImplementedBy        EdgeEnumKind = 600
	EdgeImplements           EdgeEnumKind = 500
	EdgeInheritedBy          EdgeEnumKind = 1000
	EdgeInherits             EdgeEnumKind = 900
	EdgeInitializedWith      EdgeEnumKind = 9100
	EdgeInitializes          EdgeEnumKind = 9000
	EdgeInjectedAt           EdgeEnumKind = 10500
	EdgeInjects              EdgeEnumKind = 10400
	EdgeInstantiatedAt       EdgeEnumKind = 2500
	EdgeInstantiation        EdgeEnumKind = 2400
	EdgeIsFigmentOf          EdgeEnumKind = 9300
	EdgeIsIdentifierOf       EdgeEnumKind = 9500
	EdgeIsTypeOf             EdgeEnumKind = 1900
	EdgeKeyMethod            EdgeEnumKind = 3600
	EdgeKeyMethodOf          EdgeEnumKind = 3700
	EdgeMemberSelectedAt     EdgeEnumKind = 10700
	EdgeNamespaceContains    EdgeEnumKind = 7300
	EdgeNameGeneratedBy      EdgeEnumKind = 3160
	EdgeOutlineChild         EdgeEnumKind = 5700
	EdgeOutlineParent        EdgeEnumKind = 5600
	EdgeOverriddenBy         EdgeEnumKind = 800
	EdgeOverrides            EdgeEnumKind = 700
	EdgePackageContains      EdgeEnumKind = 6800
	EdgeParameterType        EdgeEnumKind = 8800
	EdgeParameterTypeOf      EdgeEnumKind = 8900
	EdgeParent               EdgeEnumKind = 5200
	EdgeProducedBy           EdgeEnumKind = 4300
	EdgePropertyOf           EdgeEnumKind = 2900
	EdgeReceivesFrom         EdgeEnumKind = 2353
	EdgeReference            EdgeEnumKind = 2600
	EdgeReferencedAt         EdgeEnumKind = 2700
	EdgeRequiredBy           EdgeEnumKind = 3900
	EdgeRequires             EdgeEnumKind = 3800
	EdgeRestrictedTo         EdgeEnumKind = 4400
	EdgeReturnedBy           EdgeEnumKind = 2100
	EdgeReturnType           EdgeEnumKind = 2000
	EdgeSelectedFrom         EdgeEnumKind = 10800
	EdgeSelectsMemberOf      EdgeEnumKind = 10600
	EdgeSendsTo              EdgeEnumKind = 2352
	EdgeSpecializationOf     EdgeEnumKind = 1600
	EdgeSpecializedBy        EdgeEnumKind = 1700
	EdgeThrowgraphFrom       EdgeEnumKind = 6700
	EdgeThrowgraphTo         EdgeEnumKind = 6600
	EdgeThrownBy             EdgeEnumKind = 6300
	EdgeThrows               EdgeEnumKind = 6200
	EdgeTreeChild            EdgeEnumKind = 7900
	EdgeTreeParent           EdgeEnumKind = 7800
	EdgeTypeParameter        EdgeEnumKind = 1500
	EdgeTypeParameterOf      EdgeEnumKind = 1550
	EdgeUsageContext         EdgeEnumKind = 4800
	EdgeUsageInFile          EdgeEnumKind = 6100
	EdgeUsesChannel          EdgeEnumKind = 2350
	EdgeUsesVariable         EdgeEnumKind = 7000
	EdgeVariableUsedIn       EdgeEnumKind = 7100
	EdgeXlangProvides        EdgeEnumKind = 8600
	EdgeXlangProvidesName    EdgeEnumKind = 8400
	EdgeXlangUses            EdgeEnumKind = 8700
	EdgeXlangUsesName        EdgeEnumKind = 8500
)

var edgeEnumKindEnum = message.NewEnumType("EdgeEnumKind",
	message.EnumConstant{Name: "ALLOWED_ACCESS_TO", Value: int64(EdgeAllowedAccessTo)},
	message.EnumConstant{Name: "ANNOTATED_WITH", Value: int64(EdgeAnnotatedWith)},
	message.EnumConstant{Name: "ANNOTATION_OF", Value: int64(EdgeAnnotationOf)},
	message.EnumConstant{Name: "BASE_TYPE", Value: int64(EdgeBaseType)},
	message.EnumConstant{Name: "BELONGS_TO_NAMESPACE", Value: int64(EdgeBelongsToNamespace)},
	message.EnumConstant{Name: "BELONGS_TO_PACKAGE", Value: int64(EdgeBelongsToPackage)},
	message.EnumConstant{Name: "CALL", Value: int64(EdgeCall)},
	message.EnumConstant{Name: "CALLED_AT", Value: int64(EdgeCalledAt)},
	message.EnumConstant{Name: "CALLGRAPH_FROM", Value: int64(EdgeCallgraphFrom)},
	message.EnumConstant{Name: "CALLGRAPH_TO", Value: int64(EdgeCallgraphTo)},
	message.EnumConstant{Name: "CAPTURED_BY", Value: int64(EdgeCapturedBy)},
	message.EnumConstant{Name: "CAPTURES", Value: int64(EdgeCaptures)},
	message.EnumConstant{Name: "CATCHES", Value: int64(EdgeCatches)},
	message.EnumConstant{Name: "CAUGHT_BY", Value: int64(EdgeCaughtBy)},
	message.EnumConstant{Name: "CHANNEL_USED_BY", Value: int64(EdgeChannelUsedBy)},
	message.EnumConstant{Name: "CHILD", Value: int64(EdgeChild)},
	message.EnumConstant{Name: "COMMENT_IN_FILE", Value: int64(EdgeCommentInFile)},
	message.EnumConstant{Name: "COMPOSING_TYPE", Value: int64(EdgeComposingType)},
	message.EnumConstant{Name: "CONSUMED_BY", Value: int64(EdgeConsumedBy)},
	message.EnumConstant{Name: "CONTAINS_COMMENT", Value: int64(EdgeContainsComment)},
	message.EnumConstant{Name: "CONTAINS_DECLARATION", Value: int64(EdgeContainsDeclaration)},
	message.EnumConstant{Name: "CONTAINS_USAGE", Value: int64(EdgeContainsUsage)},
	message.EnumConstant{Name: "DECLARATION_IN_FILE", Value: int64(EdgeDeclarationInFile)},
	message.EnumConstant{Name: "DECLARATION_OF", Value: int64(EdgeDeclarationOf)},
	message.EnumConstant{Name: "DECLARED_BY", Value: int64(EdgeDeclaredBy)},
	message.EnumConstant{Name: "DECLARES", Value: int64(EdgeDeclares)},
	message.EnumConstant{Name: "DEFINITION_OF", Value: int64(EdgeDefinitionOf)},
	message.EnumConstant{Name: "DIAGNOSTIC_OF", Value: int64(EdgeDiagnosticOf)},
	message.EnumConstant{Name: "DIRECTLY_INHERITED_BY", Value: int64(EdgeDirectlyInheritedBy)},
	message.EnumConstant{Name: "DIRECTLY_INHERITS", Value: int64(EdgeDirectlyInherits)},
	message.EnumConstant{Name: "DIRECTLY_OVERRIDDEN_BY", Value: int64(EdgeDirectlyOverriddenBy)},
	message.EnumConstant{Name: "DIRECTLY_OVERRIDES", Value: int64(EdgeDirectlyOverrides)},
	message.EnumConstant{Name: "DOCUMENTED_WITH", Value: int64(EdgeDocumentedWith)},
	message.EnumConstant{Name: "DOCUMENTS", Value: int64(EdgeDocuments)},
	message.EnumConstant{Name: "ENCLOSED_USAGE", Value: int64(EdgeEnclosedUsage)},
	message.EnumConstant{Name: "EXTENDED_BY", Value: int64(EdgeExtendedBy)},
	message.EnumConstant{Name: "EXTENDS", Value: int64(EdgeExtends)},
	message.EnumConstant{Name: "GENERATED_BY", Value: int64(EdgeGeneratedBy)},
	message.EnumConstant{Name: "GENERATES", Value: int64(EdgeGenerates)},
	message.EnumConstant{Name: "GENERATES_NAME", Value: int64(EdgeGeneratesName)},
	message.EnumConstant{Name: "HAS_DECLARATION", Value: int64(EdgeHasDeclaration)},
	message.EnumConstant{Name: "HAS_DEFINITION", Value: int64(EdgeHasDefinition)},
	message.EnumConstant{Name: "HAS_DIAGNOSTIC", Value: int64(EdgeHasDiagnostic)},
	message.EnumConstant{Name: "HAS_FIGMENT", Value: int64(EdgeHasFigment)},
	message.EnumConstant{Name: "HAS_IDENTIFIER", Value: int64(EdgeHasIdentifier)},
	message.EnumConstant{Name: "HAS_INPUT", Value: int64(EdgeHasInput)},
	message.EnumConstant{Name: "HAS_OUTPUT", Value: int64(EdgeHasOutput)},
	message.EnumConstant{Name: "HAS_PROPERTY", Value: int64(EdgeHasProperty)},
	message.EnumConstant{Name: "HAS_SELECTION", Value: int64(EdgeHasSelection)},
	message.EnumConstant{Name: "HAS_TYPE", Value: int64(EdgeHasType)},
	message.EnumConstant{Name: "IMPLEMENTED_BY", Value: int64(EdgeImplementedBy)},
	message.EnumConstant{Name: "IMPLEMENTS", Value: int64(EdgeImplements)},
	message.EnumConstant{Name: "INHERITED_BY", Value: int64(EdgeInheritedBy)},
	message.EnumConstant{Name: "INHERITS", Value: int64(EdgeInherits)},
	message.EnumConstant{Name: "INITIALIZED_WITH", Value: int64(EdgeInitializedWith)},
	message.EnumConstant{Name: "INITIALIZES", Value: int64(EdgeInitializes)},
	message.EnumConstant{Name: "INJECTED_AT", Value: int64(EdgeInjectedAt)},
	message.EnumConstant{Name: "INJECTS", Value: int64(EdgeInjects)},
	message.EnumConstant{Name: "INSTANTIATED_AT", Value: int64(EdgeInstantiatedAt)},
	message.EnumConstant{Name: "INSTANTIATION", Value: int64(EdgeInstantiation)},
	message.EnumConstant{Name: "IS_FIGMENT_OF", Value: int64(EdgeIsFigmentOf)},
	message.EnumConstant{Name: "IS_IDENTIFIER_OF", Value: int64(EdgeIsIdentifierOf)},
	message.EnumConstant{Name: "IS_TYPE_OF", Value: int64(EdgeIsTypeOf)},
	message.EnumConstant{Name: "KEY_METHOD", Value: int64(EdgeKeyMethod)},
	message.EnumConstant{Name: "KEY_METHOD_OF", Value: int64(EdgeKeyMethodOf)},
	message.EnumConstant{Name: "MEMBER_SELECTED_AT", Value: int64(EdgeMemberSelectedAt)},
	message.EnumConstant{Name: "NAMESPACE_CONTAINS", Value: int64(EdgeNamespaceContains)},
	message.EnumConstant{Name: "NAME_GENERATED_BY", Value: int64(EdgeNameGeneratedBy)},
	message.EnumConstant{Name: "OUTLINE_CHILD", Value: int64(EdgeOutlineChild)},
	message.EnumConstant{Name: "OUTLINE_PARENT", Value: int64(EdgeOutlineParent)},
	message.EnumConstant{Name: "OVERRIDDEN_BY", Value: int64(EdgeOverriddenBy)},
	message.EnumConstant{Name: "OVERRIDES", Value: int64(EdgeOverrides)},
	message.EnumConstant{Name: "PACKAGE_CONTAINS", Value: int64(EdgePackageContains)},
	message.EnumConstant{Name: "PARAMETER_TYPE", Value: int64(EdgeParameterType)},
	message.EnumConstant{Name: "PARAMETER_TYPE_OF", Value: int64(EdgeParameterTypeOf)},
	message.EnumConstant{Name: "PARENT", Value: int64(EdgeParent)},
	message.EnumConstant{Name: "PRODUCED_BY", Value: int64(EdgeProducedBy)},
	message.EnumConstant{Name: "PROPERTY_OF", Value: int64(EdgePropertyOf)},
	message.EnumConstant{Name: "RECEIVES_FROM", Value: int64(EdgeReceivesFrom)},
	message.EnumConstant{Name: "REFERENCE", Value: int64(EdgeReference)},
	message.EnumConstant{Name: "REFERENCED_AT", Value: int64(EdgeReferencedAt)},
	message.EnumConstant{Name: "REQUIRED_BY", Value: int64(EdgeRequiredBy)},
	message.EnumConstant{Name: "REQUIRES", Value: int64(EdgeRequires)},
	message.EnumConstant{Name: "RESTRICTED_TO", Value: int64(EdgeRestrictedTo)},
	message.EnumConstant{Name: "RETURNED_BY", Value: int64(EdgeReturnedBy)},
	message.EnumConstant{Name: "RETURN_TYPE", Value: int64(EdgeReturnType)},
	message.EnumConstant{Name: "SELECTED_FROM", Value: int64(EdgeSelectedFrom)},
	message.EnumConstant{Name: "SELECTS_MEMBER_OF", Value: int64(EdgeSelectsMemberOf)},
	message.EnumConstant{Name: "SENDS_TO", Value: int64(EdgeSendsTo)},
	message.EnumConstant{Name: "SPECIALIZATION_OF", Value: int64(EdgeSpecializationOf)},
	message.EnumConstant{Name: "SPECIALIZED_BY", Value: int64(EdgeSpecializedBy)},
	message.EnumConstant{Name: "THROWGRAPH_FROM", Value: int64(EdgeThrowgraphFrom)},
	message.EnumConstant{Name: "THROWGRAPH_TO", Value: int64(EdgeThrowgraphTo)},
	message.EnumConstant{Name: "THROWN_BY", Value: int64(EdgeThrownBy)},
	message.EnumConstant{Name: "THROWS", Value: int64(EdgeThrows)},
	message.EnumConstant{Name: "TREE_CHILD", Value: int64(EdgeTreeChild)},
	message.EnumConstant{Name: "TREE_PARENT", Value: int64(EdgeTreeParent)},
	message.EnumConstant{Name: "TYPE_PARAMETER", Value: int64(EdgeTypeParameter)},
	message.EnumConstant{Name: "TYPE_PARAMETER_OF", Value: int64(EdgeTypeParameterOf)},
	message.EnumConstant{Name: "USAGE_CONTEXT", Value: int64(EdgeUsageContext)},
	message.EnumConstant{Name: "USAGE_IN_FILE", Value: int64(EdgeUsageInFile)},
	message.EnumConstant{Name: "USES_CHANNEL", Value: int64(EdgeUsesChannel)},
	message.EnumConstant{Name: "USES_VARIABLE", Value: int64(EdgeUsesVariable)},
	message.EnumConstant{Name: "VARIABLE_USED_IN", Value: int64(EdgeVariableUsedIn)},
	message.EnumConstant{Name: "XLANG_PROVIDES", Value: int64(EdgeXlangProvides)},
	message.EnumConstant{Name: "XLANG_PROVIDES_NAME", Value: int64(EdgeXlangProvidesName)},
	message.EnumConstant{Name: "XLANG_USES", Value: int64(EdgeXlangUses)},
	message.EnumConstant{Name: "XLANG_USES_NAME", Value: int64(EdgeXlangUsesName)},
)

func (v EdgeEnumKind) String() string { return edgeEnumKindEnum.Symbol(int64(v)) }
