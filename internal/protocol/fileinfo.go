package protocol

import (
	"codesearch/internal/message"
)

var modifiersType = message.NewRecordType("Modifiers", message.Fields{
	"_global":            message.Bool,
	"_thread_local":      message.Bool,
	"abstract":           message.Bool,
	"anonymous":          message.Bool,
	"autogenerated":      message.Bool,
	"close_delimiter":    message.Bool,
	"constexpr_":         message.Bool,
	"declaration":        message.Bool,
	"definition":         message.Bool,
	"deprecated":         message.Bool,
	"discrete":           message.Bool,
	"dynamically_scoped": message.Bool,
	"exported":           message.Bool,
	"file_scoped":        message.Bool,
	"foreign":            message.Bool,
	"getter":             message.Bool,
	"has_figment":        message.Bool,
	"immutable":          message.Bool,
	"implicit":           message.Bool,
	"inferred":           message.Bool,
	"is_figment":         message.Bool,
	"join_node":          message.Bool,
	"library_scoped":     message.Bool,
	"namespace_scoped":   message.Bool,
	"nonescaped":         message.Bool,
	"open_delimiter":     message.Bool,
	"operator":           message.Bool,
	"optional":           message.Bool,
	"package_scoped":     message.Bool,
	"parametric":         message.Bool,
	"predeclared":        message.Bool,
	"private":            message.Bool,
	"protected":          message.Bool,
	"public":             message.Bool,
	"receiver":           message.Bool,
	"register":           message.Bool,
	"renamed":            message.Bool,
	"repeated":           message.Bool,
	"setter":             message.Bool,
	"shadowing":          message.Bool,
	"signed":             message.Bool,
	"static":             message.Bool,
	"strict_math":        message.Bool,
	"synchronized":       message.Bool,
	"terminal":           message.Bool,
	"transient":          message.Bool,
	"unsigned":           message.Bool,
	"virtual":            message.Bool,
	"volatile":           message.Bool,
	"whitelisted":        message.Bool,
})

// Modifiers are the declaration modifiers of an outline block or legacy
// xref match. Only set flags are sent.
type Modifiers struct {
	Global            bool `json:"_global,omitempty"`
	ThreadLocal       bool `json:"_thread_local,omitempty"`
	Abstract          bool `json:"abstract,omitempty"`
	Anonymous         bool `json:"anonymous,omitempty"`
	Autogenerated     bool `json:"autogenerated,omitempty"`
	CloseDelimiter    bool `json:"close_delimiter,omitempty"`
	Constexpr         bool `json:"constexpr_,omitempty"`
	Declaration       bool `json:"declaration,omitempty"`
	Definition        bool `json:"definition,omitempty"`
	Deprecated        bool `json:"deprecated,omitempty"`
	Discrete          bool `json:"discrete,omitempty"`
	DynamicallyScoped bool `json:"dynamically_scoped,omitempty"`
	Exported          bool `json:"exported,omitempty"`
	FileScoped        bool `json:"file_scoped,omitempty"`
	Foreign           bool `json:"foreign,omitempty"`
	Getter            bool `json:"getter,omitempty"`
	HasFigment        bool `json:"has_figment,omitempty"`
	Immutable         bool `json:"immutable,omitempty"`
	Implicit          bool `json:"implicit,omitempty"`
	Inferred          bool `json:"inferred,omitempty"`
	IsFigment         bool `json:"is_figment,omitempty"`
	JoinNode          bool `json:"join_node,omitempty"`
	LibraryScoped     bool `json:"library_scoped,omitempty"`
	NamespaceScoped   bool `json:"namespace_scoped,omitempty"`
	Nonescaped        bool `json:"nonescaped,omitempty"`
	OpenDelimiter     bool `json:"open_delimiter,omitempty"`
	Operator          bool `json:"operator,omitempty"`
	Optional          bool `json:"optional,omitempty"`
	PackageScoped     bool `json:"package_scoped,omitempty"`
	Parametric        bool `json:"parametric,omitempty"`
	Predeclared       bool `json:"predeclared,omitempty"`
	Private           bool `json:"private,omitempty"`
	Protected         bool `json:"protected,omitempty"`
	Public            bool `json:"public,omitempty"`
	Receiver          bool `json:"receiver,omitempty"`
	Register          bool `json:"register,omitempty"`
	Renamed           bool `json:"renamed,omitempty"`
	Repeated          bool `json:"repeated,omitempty"`
	Setter            bool `json:"setter,omitempty"`
	Shadowing         bool `json:"shadowing,omitempty"`
	Signed            bool `json:"signed,omitempty"`
	Static            bool `json:"static,omitempty"`
	StrictMath        bool `json:"strict_math,omitempty"`
	Synchronized      bool `json:"synchronized,omitempty"`
	Terminal          bool `json:"terminal,omitempty"`
	Transient         bool `json:"transient,omitempty"`
	Unsigned          bool `json:"unsigned,omitempty"`
	Virtual           bool `json:"virtual,omitempty"`
	Volatile          bool `json:"volatile,omitempty"`
	Whitelisted       bool `json:"whitelisted,omitempty"`
}

func (Modifiers) Descriptor() *message.RecordType { return modifiersType }

var codeBlockType = message.NewRecordType("CodeBlock", message.Fields{
	"child":       message.ListOf(message.SelfRef),
	"modifiers":   message.RecordOf(modifiersType),
	"name":        message.String,
	"name_prefix": message.String,
	"signature":   message.String,
	"text_range":  message.RecordOf(textRangeType),
	"type":        message.EnumOf(codeBlockTypeEnum),
})

// CodeBlock is a node of a file outline.
//
// For a function named net::Foo::Bar where net is a namespace, Name is "Bar"
// and NamePrefix is "Foo::". Signature holds the parameter list of FUNCTION
// blocks and is not a codesearch ticket.
type CodeBlock struct {
	Child      []CodeBlock   `json:"child"`
	Modifiers  Modifiers     `json:"modifiers"`
	Name       string        `json:"name"`
	NamePrefix string        `json:"name_prefix"`
	Signature  string        `json:"signature"`
	TextRange  TextRange     `json:"text_range"`
	Type       CodeBlockType `json:"type"`
}

func (CodeBlock) Descriptor() *message.RecordType { return codeBlockType }

// Find returns b or the first descendant, in depth-first order, whose name
// and type match. The name "*" matches any name.
func (b *CodeBlock) Find(name string, typ CodeBlockType) *CodeBlock {
	if (b.Name == name || name == "*") && b.Type == typ {
		return b
	}
	for i := range b.Child {
		if found := b.Child[i].Find(name, typ); found != nil {
			return found
		}
	}
	return nil
}

var gobInfoType = message.NewRecordType("GobInfo", message.Fields{
	"commit": message.String,
	"path":   message.String,
	"repo":   message.String,
})

// GobInfo locates a file in its git repository.
type GobInfo struct {
	Commit string `json:"commit"`
	Path   string `json:"path"`
	Repo   string `json:"repo"`
}

func (GobInfo) Descriptor() *message.RecordType { return gobInfoType }

var fileInfoType = message.NewRecordType("FileInfo", message.Fields{
	"actual_name":       message.String,
	"changelist_num":    message.String,
	"codeblock":         message.ListOf(message.RecordOf(codeBlockType)),
	"content":           message.RecordOf(annotatedTextType),
	"converted_content": message.RecordOf(annotatedTextType),
	"converted_lines":   message.Int,
	"fold_ranges":       message.ListOf(message.RecordOf(textRangeType)),
	"generated":         message.Bool,
	"generated_from":    message.ListOf(message.String),
	"gob_info":          message.RecordOf(gobInfoType),
	"html_text":         message.String,
	"language":          message.String,
	"license_path":      message.String,
	"license_type":      message.String,
	"lines":             message.Int,
	"md5":               message.String,
	"mime_type":         message.String,
	"name":              message.String,
	"package_name":      message.String,
	"revision_num":      message.String,
	"size":              message.Int,
	"type":              message.EnumOf(fileTypeEnum),
})

type FileInfo struct {
	ActualName       string        `json:"actual_name"`
	ChangelistNum    string        `json:"changelist_num"`
	Codeblock        []CodeBlock   `json:"codeblock"`
	Content          AnnotatedText `json:"content"`
	ConvertedContent AnnotatedText `json:"converted_content"`
	ConvertedLines   int           `json:"converted_lines"`
	FoldRanges       []TextRange   `json:"fold_ranges"`
	Generated        bool          `json:"generated"`
	GeneratedFrom    []string      `json:"generated_from"`
	GobInfo          GobInfo       `json:"gob_info"`
	HTMLText         string        `json:"html_text"`
	Language         string        `json:"language"`
	LicensePath      string        `json:"license_path"`
	LicenseType      string        `json:"license_type"`
	Lines            int           `json:"lines"`
	MD5              string        `json:"md5"`
	MimeType         string        `json:"mime_type"`
	Name             string        `json:"name"`
	PackageName      string        `json:"package_name"`
	RevisionNum      *string       `json:"revision_num,omitempty"`
	Size             int           `json:"size"`
	Type             FileType      `json:"type"`
}

func (FileInfo) Descriptor() *message.RecordType { return fileInfoType }

// Revision returns the commit the backend index reflects for this file, or
// "" if the response carries none.
func (f *FileInfo) Revision() string {
	if f.GobInfo.Commit != "" {
		return f.GobInfo.Commit
	}
	return f.ChangelistNum
}

var fileInfoResponseType = message.NewRecordType("FileInfoResponse", message.Fields{
	"announcement":  message.String,
	"error_message": message.String,
	"file_info":     message.RecordOf(fileInfoType),
	"return_code":   message.Int,
})

type FileInfoResponse struct {
	Announcement string    `json:"announcement"`
	ErrorMessage string    `json:"error_message"`
	FileInfo     *FileInfo `json:"file_info,omitempty"`
	ReturnCode   int       `json:"return_code"`
}

func (FileInfoResponse) Descriptor() *message.RecordType { return fileInfoResponseType }

var fileInfoRequestType = message.NewRecordType("FileInfoRequest", message.Fields{
	"file_spec":            message.RecordOf(fileSpecType),
	"fetch_html_content":   message.Bool,
	"fetch_outline":        message.Bool,
	"fetch_folding":        message.Bool,
	"fetch_generated_from": message.Bool,
})

type FileInfoRequest struct {
	FileSpec           FileSpec `json:"file_spec"`
	FetchHTMLContent   bool     `json:"fetch_html_content"`
	FetchOutline       bool     `json:"fetch_outline"`
	FetchFolding       bool     `json:"fetch_folding"`
	FetchGeneratedFrom bool     `json:"fetch_generated_from"`
}

func (FileInfoRequest) Descriptor() *message.RecordType { return fileInfoRequestType }
