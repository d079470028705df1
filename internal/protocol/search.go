package protocol

import (
	"codesearch/internal/message"
)

var vanityHostnameType = message.NewRecordType("VanityGitOnBorgHostname", message.Fields{
	"name":     message.String,
	"hostname": message.String,
})

type VanityGitOnBorgHostname struct {
	Name     string `json:"name"`
	Hostname string `json:"hostname"`
}

func (VanityGitOnBorgHostname) Descriptor() *message.RecordType { return vanityHostnameType }

var internalPackageType = message.NewRecordType("InternalPackage", message.Fields{
	"browse_path_prefix":           message.String,
	"cs_changelist_num":            message.String,
	"grok_languages":               message.ListOf(message.String),
	"grok_name":                    message.String,
	"grok_path_prefix":             message.ListOf(message.String),
	"id":                           message.String,
	"kythe_languages":              message.ListOf(message.String),
	"name":                         message.String,
	"repo":                         message.String,
	"vanity_git_on_borg_hostnames": message.ListOf(message.RecordOf(vanityHostnameType)),
})

// InternalPackage describes a package indexed by the backend.
type InternalPackage struct {
	BrowsePathPrefix         string                    `json:"browse_path_prefix"`
	CsChangelistNum          string                    `json:"cs_changelist_num"`
	GrokLanguages            []string                  `json:"grok_languages"`
	GrokName                 string                    `json:"grok_name"`
	GrokPathPrefix           []string                  `json:"grok_path_prefix"`
	ID                       string                    `json:"id"`
	KytheLanguages           []string                  `json:"kythe_languages"`
	Name                     string                    `json:"name"`
	Repo                     string                    `json:"repo"`
	VanityGitOnBorgHostnames []VanityGitOnBorgHostname `json:"vanity_git_on_borg_hostnames"`
}

func (InternalPackage) Descriptor() *message.RecordType { return internalPackageType }

var statusResponseType = message.NewRecordType("StatusResponse", message.Fields{
	"announcement":     message.String,
	"build_label":      message.String,
	"internal_package": message.ListOf(message.RecordOf(internalPackageType)),
	"success":          message.Bool,
})

type StatusResponse struct {
	Announcement    string            `json:"announcement"`
	BuildLabel      string            `json:"build_label"`
	InternalPackage []InternalPackage `json:"internal_package"`
	Success         bool              `json:"success"`
}

func (StatusResponse) Descriptor() *message.RecordType { return statusResponseType }

var statusRequestType = message.NewRecordType("StatusRequest", message.Fields{})

type StatusRequest struct{}

func (StatusRequest) Descriptor() *message.RecordType { return statusRequestType }

var dirInfoChildType = message.NewRecordType("DirInfoResponseChild", message.Fields{
	"is_deleted":   message.Bool,
	"is_directory": message.Bool,
	"name":         message.String,
	"package_id":   message.String,
	"path":         message.String,
	"revision_num": message.String,
})

type DirInfoResponseChild struct {
	IsDeleted   bool   `json:"is_deleted"`
	IsDirectory bool   `json:"is_directory"`
	Name        string `json:"name"`
	PackageID   string `json:"package_id"`
	Path        string `json:"path"`
	RevisionNum string `json:"revision_num"`
}

func (DirInfoResponseChild) Descriptor() *message.RecordType { return dirInfoChildType }

var dirInfoParentType = message.NewRecordType("DirInfoResponseParent", message.Fields{
	"name":       message.String,
	"path":       message.String,
	"package_id": message.String,
})

type DirInfoResponseParent struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	PackageID string `json:"package_id"`
}

func (DirInfoResponseParent) Descriptor() *message.RecordType { return dirInfoParentType }

var dirInfoResponseType = message.NewRecordType("DirInfoResponse", message.Fields{
	"child":      message.ListOf(message.RecordOf(dirInfoChildType)),
	"generated":  message.Bool,
	"gob_info":   message.RecordOf(gobInfoType),
	"name":       message.String,
	"package_id": message.String,
	"parent":     message.ListOf(message.RecordOf(dirInfoParentType)),
	"path":       message.String,
	"success":    message.Bool,
})

type DirInfoResponse struct {
	Child     []DirInfoResponseChild  `json:"child"`
	Generated bool                    `json:"generated"`
	GobInfo   GobInfo                 `json:"gob_info"`
	Name      string                  `json:"name"`
	PackageID string                  `json:"package_id"`
	Parent    []DirInfoResponseParent `json:"parent"`
	Path      string                  `json:"path"`
	Success   bool                    `json:"success"`
}

func (DirInfoResponse) Descriptor() *message.RecordType { return dirInfoResponseType }

var dirInfoRequestType = message.NewRecordType("DirInfoRequest", message.Fields{
	"file_spec": message.RecordOf(fileSpecType),
})

type DirInfoRequest struct {
	FileSpec FileSpec `json:"file_spec"`
}

func (DirInfoRequest) Descriptor() *message.RecordType { return dirInfoRequestType }

var fileResultType = message.NewRecordType("FileResult", message.Fields{
	"display_name": message.RecordOf(annotatedTextType),
	"file":         message.RecordOf(fileSpecType),
	"license":      message.RecordOf(fileSpecType),
	"license_type": message.String,
	"size":         message.Int,
})

type FileResult struct {
	DisplayName AnnotatedText `json:"display_name"`
	File        FileSpec      `json:"file"`
	License     FileSpec      `json:"license"`
	LicenseType string        `json:"license_type"`
	Size        int           `json:"size"`
}

func (FileResult) Descriptor() *message.RecordType { return fileResultType }

var singleMatchType = message.NewRecordType("SingleMatch", message.Fields{
	"line_number":            message.Int,
	"line_text":              message.String,
	"match_length":           message.Int,
	"match_offset":           message.Int,
	"post_context_num_lines": message.Int,
	"post_context_text":      message.String,
	"pre_context_num_lines":  message.Int,
	"pre_context_text":       message.String,
	"score":                  message.Int,
})

type SingleMatch struct {
	LineNumber          int    `json:"line_number"`
	LineText            string `json:"line_text"`
	MatchLength         int    `json:"match_length"`
	MatchOffset         int    `json:"match_offset"`
	PostContextNumLines int    `json:"post_context_num_lines"`
	PostContextText     string `json:"post_context_text"`
	PreContextNumLines  int    `json:"pre_context_num_lines"`
	PreContextText      string `json:"pre_context_text"`
	Score               int    `json:"score"`
}

func (SingleMatch) Descriptor() *message.RecordType { return singleMatchType }

var searchResultType = message.NewRecordType("SearchResult", message.Fields{
	"best_matching_line_number": message.Int,
	"children":                  message.ListOf(message.String),
	"docid":                     message.String,
	"duplicate":                 message.ListOf(message.RecordOf(fileResultType)),
	"full_history_search":       message.Bool,
	"has_unshown_matches":       message.Bool,
	"hit_max_matches":           message.Bool,
	"is_augmented":              message.Bool,
	"language":                  message.String,
	"match":                     message.ListOf(message.RecordOf(singleMatchType)),
	"match_reason":              message.RecordOf(matchReasonType),
	"num_duplicates":            message.Int,
	"num_matches":               message.Int,
	"snippet":                   message.ListOf(message.RecordOf(snippetType)),
	"top_file":                  message.RecordOf(fileResultType),
})

type SearchResult struct {
	BestMatchingLineNumber int           `json:"best_matching_line_number"`
	Children               []string      `json:"children"`
	DocID                  string        `json:"docid"`
	Duplicate              []FileResult  `json:"duplicate"`
	FullHistorySearch      *bool         `json:"full_history_search,omitempty"`
	HasUnshownMatches      bool          `json:"has_unshown_matches"`
	HitMaxMatches          bool          `json:"hit_max_matches"`
	IsAugmented            bool          `json:"is_augmented"`
	Language               string        `json:"language"`
	Match                  []SingleMatch `json:"match"`
	MatchReason            MatchReason   `json:"match_reason"`
	NumDuplicates          int           `json:"num_duplicates"`
	NumMatches             int           `json:"num_matches"`
	Snippet                []Snippet     `json:"snippet"`
	TopFile                FileResult    `json:"top_file"`
}

func (SearchResult) Descriptor() *message.RecordType { return searchResultType }

var searchResponseType = message.NewRecordType("SearchResponse", message.Fields{
	"estimated_total_number_of_results": message.Int,
	"hit_max_matches_per_file":          message.Bool,
	"hit_max_results":                   message.Bool,
	"hit_max_to_score":                  message.Bool,
	"maybe_skipped_documents":           message.Bool,
	"next_page_token":                   message.String,
	"results_offset":                    message.Int,
	"search_result":                     message.ListOf(message.RecordOf(searchResultType)),
	"status":                            message.Int,
	"status_message":                    message.String,
})

type SearchResponse struct {
	EstimatedTotalNumberOfResults int            `json:"estimated_total_number_of_results"`
	HitMaxMatchesPerFile          bool           `json:"hit_max_matches_per_file"`
	HitMaxResults                 bool           `json:"hit_max_results"`
	HitMaxToScore                 bool           `json:"hit_max_to_score"`
	MaybeSkippedDocuments         bool           `json:"maybe_skipped_documents"`
	NextPageToken                 *string        `json:"next_page_token,omitempty"`
	ResultsOffset                 int            `json:"results_offset"`
	SearchResult                  []SearchResult `json:"search_result"`
	Status                        int            `json:"status"`
	StatusMessage                 string         `json:"status_message"`
}

func (SearchResponse) Descriptor() *message.RecordType { return searchResponseType }

var searchRequestType = message.NewRecordType("SearchRequest", message.Fields{
	"exhaustive":                     message.Bool,
	"file_sizes":                     message.Bool,
	"full_history_search":            message.Bool,
	"lines_context":                  message.Int,
	"max_num_results":                message.Int,
	"page_token":                     message.String,
	"query":                          message.String,
	"results_offset":                 message.Int,
	"return_all_duplicates":          message.Bool,
	"return_all_snippets":            message.Bool,
	"return_local_augmented_results": message.Bool,
	"return_decorated_snippets":      message.Bool,
	"return_directories":             message.Bool,
	"return_line_matches":            message.Bool,
	"return_snippets":                message.Bool,
	"sort_results":                   message.Bool,
})

// SearchRequest is a free text code search. Pointer fields are only sent
// when set.
type SearchRequest struct {
	Exhaustive                  bool    `json:"exhaustive"`
	FileSizes                   *bool   `json:"file_sizes,omitempty"`
	FullHistorySearch           *bool   `json:"full_history_search,omitempty"`
	LinesContext                int     `json:"lines_context"`
	MaxNumResults               int     `json:"max_num_results"`
	PageToken                   *string `json:"page_token,omitempty"`
	Query                       string  `json:"query"`
	ResultsOffset               *int    `json:"results_offset,omitempty"`
	ReturnAllDuplicates         bool    `json:"return_all_duplicates"`
	ReturnAllSnippets           bool    `json:"return_all_snippets"`
	ReturnLocalAugmentedResults *bool   `json:"return_local_augmented_results,omitempty"`
	ReturnDecoratedSnippets     bool    `json:"return_decorated_snippets"`
	ReturnDirectories           bool    `json:"return_directories"`
	ReturnLineMatches           bool    `json:"return_line_matches"`
	ReturnSnippets              bool    `json:"return_snippets"`
	SortResults                 *bool   `json:"sort_results,omitempty"`
}

func (SearchRequest) Descriptor() *message.RecordType { return searchRequestType }

func NewSearchRequest(query string) SearchRequest {
	return SearchRequest{Query: query, MaxNumResults: DefaultMaxResults}
}
