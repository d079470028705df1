package protocol

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	cserrors "codesearch/internal/errors"
	"codesearch/internal/message"
)

func TestTextRange_Contains(t *testing.T) {
	r := TextRange{StartLine: 1, StartColumn: 8, EndLine: 3, EndColumn: 1}

	tests := []struct {
		line, col int
		want      bool
	}{
		{1, 8, true},
		{3, 1, true},
		{2, 100, true},
		{2, 0, true},
		{1, 7, false},
		{3, 2, false},
		{0, 10, false},
		{4, 1, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.line, tt.col); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestTextRange_Overlaps(t *testing.T) {
	quad := func(q [4]int) TextRange {
		return TextRange{StartLine: q[0], StartColumn: q[1], EndLine: q[2], EndColumn: q[3]}
	}
	tests := []struct {
		r1, r2 [4]int
		want   bool
	}{
		{[4]int{2, 8, 2, 9}, [4]int{1, 1, 1, 100}, false},
		{[4]int{2, 8, 2, 9}, [4]int{2, 6, 2, 7}, false},
		{[4]int{2, 8, 2, 9}, [4]int{2, 6, 2, 8}, true},
		{[4]int{2, 8, 3, 9}, [4]int{2, 6, 2, 8}, true},
		{[4]int{2, 8, 4, 9}, [4]int{3, 6, 3, 800}, true},
		{[4]int{2, 8, 4, 9}, [4]int{1, 6, 3, 800}, true},
		{[4]int{2, 8, 4, 9}, [4]int{3, 6, 300, 800}, true},
		{[4]int{2, 8, 4, 9}, [4]int{1, 6, 2, 7}, false},
		{[4]int{2, 8, 4, 9}, [4]int{0, 0, 0, 0}, false},
	}
	for _, tt := range tests {
		r1, r2 := quad(tt.r1), quad(tt.r2)
		if got := r1.Overlaps(r2); got != tt.want {
			t.Errorf("%s.Overlaps(%s) = %v, want %v", r1, r2, got, tt.want)
		}
		if got := r2.Overlaps(r1); got != tt.want {
			t.Errorf("%s.Overlaps(%s) = %v, want %v", r2, r1, got, tt.want)
		}
	}
}

func TestTextRange_ValidityAndParse(t *testing.T) {
	if (TextRange{}).IsValid() {
		t.Error("zero range should be invalid")
	}
	if !(TextRange{EndColumn: 1}).IsValid() {
		t.Error("range with one bound set should be valid")
	}
	r, err := ParseTextRange("10:3-10:6")
	if err != nil {
		t.Fatal(err)
	}
	if r != (TextRange{10, 3, 10, 6}) {
		t.Errorf("ParseTextRange = %+v", r)
	}
	if _, err := ParseTextRange("10:3"); err == nil {
		t.Error("expected error for incomplete range")
	}
}

func TestXrefSignature_Signatures(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantSigs  []string
		wantFirst string
	}{
		{
			name:      "single",
			data:      `{"highlight_signature":"abc", "signature":"sig","signature_hash":"hash"}`,
			wantSigs:  []string{"abc", "sig"},
			wantFirst: "sig",
		},
		{
			name:      "multi",
			data:      `{"signature": "foo bar baz", "highlight_signature": "hifoo hibar"}`,
			wantSigs:  []string{"bar", "baz", "foo", "hibar", "hifoo"},
			wantFirst: "foo",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := Decode[XrefSignature]([]byte(tt.data))
			if err != nil {
				t.Fatal(err)
			}
			l, err := Decode[InternalLink]([]byte(tt.data))
			if err != nil {
				t.Fatal(err)
			}
			for _, got := range [][]string{x.GetSignatures(), l.GetSignatures()} {
				sort.Strings(got)
				if !reflect.DeepEqual(got, tt.wantSigs) {
					t.Errorf("GetSignatures = %v, want %v", got, tt.wantSigs)
				}
			}
			if x.GetSignature() != tt.wantFirst || l.GetSignature() != tt.wantFirst {
				t.Errorf("GetSignature = %q / %q, want %q", x.GetSignature(), l.GetSignature(), tt.wantFirst)
			}
			if !x.MatchesSignature("hifoo") && tt.name == "multi" {
				t.Error("MatchesSignature(hifoo) = false")
			}
		})
	}
}

func TestAnnotation_SignatureDispatch(t *testing.T) {
	link := Annotation{
		Type:          AnnotationType{ID: AnnotationLinkToDefinition},
		InternalLink:  &InternalLink{Signature: "link-sig"},
		XrefSignature: &XrefSignature{Signature: "xref-sig"},
	}
	if got := link.GetSignature(); got != "link-sig" {
		t.Errorf("LINK_TO_DEFINITION GetSignature = %q", got)
	}

	xref := Annotation{Type: AnnotationType{ID: AnnotationXrefSignature}, XrefSignature: &XrefSignature{Signature: "xref-sig"}}
	if got := xref.GetSignature(); got != "xref-sig" {
		t.Errorf("XREF_SIGNATURE GetSignature = %q", got)
	}
	if !xref.MatchesSignature("xref-sig") {
		t.Error("MatchesSignature = false")
	}

	other := Annotation{Type: AnnotationType{ID: AnnotationBlame}}
	if other.HasSignature() || other.GetSignature() != "" || other.GetSignatures() != nil {
		t.Error("BLAME annotations carry no signature")
	}
}

func TestDecode_CompoundResponseSlots(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "compound_response_01.json"))
	if err != nil {
		t.Fatal(err)
	}
	resp, err := Decode[CompoundResponse](data)
	if err != nil {
		t.Fatalf("Decode error = %v", err)
	}

	if resp.AnnotationResponse.Present() || resp.DirInfoResponse.Present() || resp.FileInfoResponse.Present() ||
		resp.SearchResponse.Present() || resp.StatusResponse.Present() || resp.XrefSearchResponse.Present() {
		t.Error("slots not in the payload should be absent")
	}
	if !resp.CallGraphResponse.Present() || resp.CallGraphResponse.Len() != 1 {
		t.Fatalf("call_graph_response = %+v, want one item", resp.CallGraphResponse)
	}
	cg, _ := resp.CallGraphResponse.First()
	if cg.Node.NodeKind != KytheNodeFunction {
		t.Errorf("node_kind = %v, want FUNCTION", cg.Node.NodeKind)
	}
	if len(cg.Node.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(cg.Node.Children))
	}
	if n := len(cg.Node.Children[0].Params); n != 3 {
		t.Errorf("children[0].params = %d, want 3", n)
	}
	if n := len(cg.Node.Children[1].Params); n != 0 {
		t.Errorf("children[1].params = %d, want 0", n)
	}
	if cg.Node.Children[0].NodeKind != KytheNodeFunction {
		t.Errorf("numeric node_kind = %v, want FUNCTION", cg.Node.Children[0].NodeKind)
	}
	if resp.ElapsedMs != 112 {
		t.Errorf("elapsed_ms = %d", resp.ElapsedMs)
	}
}

func TestDecode_EmptySlotIsPresent(t *testing.T) {
	resp, err := Decode[CompoundResponse]([]byte(`{"xref_search_response": [], "file_info_response": null}`))
	if err != nil {
		t.Fatal(err)
	}
	if !resp.XrefSearchResponse.Present() || resp.XrefSearchResponse.Len() != 0 {
		t.Errorf("empty array should decode as a present, empty slot")
	}
	if resp.FileInfoResponse.Present() {
		t.Errorf("null should decode as absent")
	}
}

func TestDecode_SymbolicEnums(t *testing.T) {
	m, err := Decode[XrefSingleMatch]([]byte(`{"type_id": "CALLED_BY", "signature": "s", "node_type": "CLASS", "grok_modifiers": {"virtual": true}}`))
	if err != nil {
		t.Fatal(err)
	}
	if m.TypeID != XrefCalledBy {
		t.Errorf("TypeID = %v, want CALLED_BY", m.TypeID)
	}
	if m.NodeType == nil || *m.NodeType != LegacyNodeClass {
		t.Errorf("NodeType = %v, want CLASS", m.NodeType)
	}
	if m.GrokModifiers == nil || !m.GrokModifiers.Virtual {
		t.Errorf("GrokModifiers = %+v, want virtual", m.GrokModifiers)
	}

	_, err = Decode[Annotation]([]byte(`{"type": {"id": "NOT_A_TYPE"}}`))
	if !cserrors.Is(err, cserrors.DecodeError) {
		t.Errorf("unknown enum symbol error = %v, want DECODE_ERROR", err)
	}
}

func TestRoundTrip(t *testing.T) {
	kind := LegacyNodeField
	values := []Message{
		&Annotation{},
		&Annotation{
			Content:          "Overrides net::Foo::Callback",
			FileName:         "net/foo.cc",
			InternalLink:     &InternalLink{Signature: "a b", Path: "net/foo.h", Range: TextRange{1, 2, 3, 4}},
			IsImplicitTarget: true,
			KytheXrefKind:    KytheNodeVariableField,
			Range:            TextRange{10, 3, 10, 6},
			Type:             AnnotationType{ID: AnnotationXrefSignature},
			XrefKind:         &kind,
			XrefSignature:    &XrefSignature{Signature: "sig"},
		},
		&Node{
			Signature: "root",
			Params:    []string{"a"},
			Children:  []Node{{Signature: "c1", Children: []Node{{Signature: "c2"}}}},
		},
	}
	for _, v := range values {
		data, err := Encode(v)
		if err != nil {
			t.Fatalf("Encode(%T) error = %v", v, err)
		}
		var got Message
		switch v.(type) {
		case *Annotation:
			got, err = Decode[Annotation](data)
		case *Node:
			got, err = Decode[Node](data)
		}
		if err != nil {
			t.Fatalf("Decode(%s) error = %v", data, err)
		}
		if !reflect.DeepEqual(got, v) {
			t.Errorf("round trip of %T:\n got %+v\nwant %+v", v, got, v)
		}
	}
}

func encodeQuery(t *testing.T, m Message) string {
	t.Helper()
	pairs, err := QueryString(m)
	if err != nil {
		t.Fatal(err)
	}
	return message.EncodeQuery(pairs)
}

func TestQueryString_AnnotationRequestMD5(t *testing.T) {
	req := &AnnotationRequest{
		FileSpec: FileSpec{Name: "net/a.cc", PackageName: "chromium"},
		Type:     []AnnotationType{{ID: AnnotationXrefSignature}},
	}
	want := "file_spec=b&name=net%2Fa.cc&package_name=chromium&file_spec=e&md5=&type=b&id=4&type=e"
	if got := encodeQuery(t, req); got != want {
		t.Errorf("query = %q\nwant    %q", got, want)
	}

	req.MD5 = "abc"
	want = "file_spec=b&name=net%2Fa.cc&package_name=chromium&file_spec=e&md5=abc&type=b&id=4&type=e"
	if got := encodeQuery(t, req); got != want {
		t.Errorf("query = %q\nwant    %q", got, want)
	}
}

func TestQueryString_CompoundRequest(t *testing.T) {
	req := &CompoundRequest{
		FileInfoRequest: SlotOf(FileInfoRequest{FileSpec: FileSpec{Name: "a.cc", PackageName: "chromium"}, FetchOutline: true}),
	}
	want := "file_info_request=b&fetch_folding=false&fetch_generated_from=false&fetch_html_content=false" +
		"&fetch_outline=true&file_spec=b&name=a.cc&package_name=chromium&file_spec=e&file_info_request=e"
	if got := encodeQuery(t, req); got != want {
		t.Errorf("query = %q\nwant    %q", got, want)
	}

	status := &CompoundRequest{StatusRequest: SlotOf(StatusRequest{})}
	if got := encodeQuery(t, status); got != "status_request=b&status_request=e" {
		t.Errorf("status query = %q", got)
	}
}

func TestQueryString_ModifiersOrdering(t *testing.T) {
	m := &Modifiers{Global: true, Abstract: true, Virtual: true}
	if got := encodeQuery(t, m); got != "_global=true&abstract=true&virtual=true" {
		t.Errorf("query = %q", got)
	}
}

func TestQueryString_XrefSearchRequest(t *testing.T) {
	req := NewXrefSearchRequest(FileSpec{Name: ".", PackageName: "chromium"}, "sig")
	if req.MaxNumResults != DefaultMaxResults {
		t.Errorf("MaxNumResults = %d", req.MaxNumResults)
	}
	want := "file_spec=b&name=.&package_name=chromium&file_spec=e&max_num_results=100&query=sig"
	if got := encodeQuery(t, &req); got != want {
		t.Errorf("query = %q\nwant    %q", got, want)
	}

	req.EdgeFilter = []EdgeEnumKind{EdgeHasDefinition, EdgeHasDeclaration}
	want = "edge_filter=3500&edge_filter=3300&" + want
	if got := encodeQuery(t, &req); got != want {
		t.Errorf("query = %q\nwant    %q", got, want)
	}
}

func TestEncodeSymbolized(t *testing.T) {
	data, err := EncodeSymbolized(&XrefTypeCount{Count: 2, TypeID: XrefDefinition})
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got["type_id"] != "DEFINITION" {
		t.Errorf("type_id = %v, want DEFINITION", got["type_id"])
	}
	if _, ok := got["type"]; ok {
		t.Error("empty string field should be omitted")
	}
}

func TestSlot_JSON(t *testing.T) {
	tests := []struct {
		name string
		slot Slot[int]
		want string
	}{
		{"absent", Slot[int]{}, "null"},
		{"empty", SlotOf[int](), "[]"},
		{"items", SlotOf(1, 2), "[1,2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.slot)
			if err != nil {
				t.Fatal(err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal = %s, want %s", data, tt.want)
			}
			var back Slot[int]
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatal(err)
			}
			if back.Present() != tt.slot.Present() || back.Len() != tt.slot.Len() {
				t.Errorf("Unmarshal = %+v, want %+v", back, tt.slot)
			}
		})
	}
}

func TestCodeBlock_Find(t *testing.T) {
	root := CodeBlock{
		Type: CodeBlockRoot,
		Child: []CodeBlock{
			{Name: "net", Type: CodeBlockNamespace, Child: []CodeBlock{
				{Name: "HttpAuth", Type: CodeBlockClass, Child: []CodeBlock{
					{Name: "HandleChallengeResponse", Type: CodeBlockFunction},
				}},
			}},
		},
	}
	if got := root.Find("", CodeBlockRoot); got != &root {
		t.Error("Find with default arguments should return the root")
	}
	if got := root.Find("net", CodeBlockNamespace); got == nil || got.Name != "net" {
		t.Errorf("Find(net) = %v", got)
	}
	if got := root.Find("HandleChallengeResponse", CodeBlockFunction); got == nil {
		t.Error("Find(HandleChallengeResponse) = nil")
	}
	if got := root.Find("*", CodeBlockClass); got == nil || got.Name != "HttpAuth" {
		t.Errorf("Find(*, CLASS) = %v", got)
	}
	if got := root.Find("net", CodeBlockClass); got != nil {
		t.Errorf("Find(net, CLASS) = %v, want nil", got)
	}
}

func TestParseKytheSignature(t *testing.T) {
	tests := []struct {
		name     string
		sig      string
		wantOK   bool
		wantSpec FileSpec
		wantLang string
	}{
		{
			name:     "lang before path",
			sig:      "kythe://chromium?lang=c%2B%2B?path=src/net/http/http_auth.h#HttpAuth%3Anet%23c",
			wantOK:   true,
			wantSpec: FileSpec{Name: "src/net/http/http_auth.h", PackageName: "chromium"},
			wantLang: "c++",
		},
		{
			name:     "path before lang",
			sig:      "kythe://chromium?path=src/base/a%20b.cc?lang=c%2B%2B#x",
			wantOK:   true,
			wantSpec: FileSpec{Name: "src/base/a b.cc", PackageName: "chromium"},
			wantLang: "c++",
		},
		{
			name:     "multiple tickets",
			sig:      "kythe://chromium?lang=c%2B%2B?path=src/a.h#1 kythe://chromium?lang=c%2B%2B?path=src/b.h#2",
			wantOK:   true,
			wantSpec: FileSpec{Name: "src/a.h", PackageName: "chromium"},
			wantLang: "c++",
		},
		{
			name: "legacy",
			sig:  "cpp:net::class-HttpNetworkTransaction@chromium/../../net/http/http_network_transaction.h|def",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, ok := ParseKytheSignature(tt.sig)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			spec, _ := ticket.FileSpec()
			if spec != tt.wantSpec {
				t.Errorf("FileSpec = %+v, want %+v", spec, tt.wantSpec)
			}
			if ticket.Language != tt.wantLang {
				t.Errorf("Language = %q, want %q", ticket.Language, tt.wantLang)
			}
		})
	}
}

func TestParseLegacySignature(t *testing.T) {
	l, ok := ParseLegacySignature("cpp:net::class-HttpNetworkTransaction@chromium/../../net/http/http_network_transaction.h|def")
	if !ok {
		t.Fatal("ok = false")
	}
	want := LegacySignature{
		Language: "cpp",
		Name:     "net::class-HttpNetworkTransaction",
		Package:  "chromium",
		Path:     "net/http/http_network_transaction.h",
		Tag:      "def",
	}
	if l != want {
		t.Errorf("ParseLegacySignature = %+v, want %+v", l, want)
	}
	if _, ok := ParseLegacySignature("kythe://chromium?path=a#b"); ok {
		t.Error("Kythe tickets are not legacy signatures")
	}
}

func TestKindSpacesAreDisjoint(t *testing.T) {
	for _, c := range kytheXrefKindEnum.Constants() {
		if edgeEnumKindEnum.Has(c.Value) {
			t.Errorf("KytheXrefKind %s (%d) is also an EdgeEnumKind", c.Name, c.Value)
		}
	}

	if err := CheckKytheFilter([]KytheXrefKind{XrefDefinition, XrefCalledBy}); err != nil {
		t.Errorf("CheckKytheFilter(valid) = %v", err)
	}
	if err := CheckKytheFilter([]KytheXrefKind{KytheXrefKind(EdgeHasDefinition)}); !cserrors.Is(err, cserrors.InvalidArgument) {
		t.Errorf("CheckKytheFilter(edge kind) = %v, want INVALID_ARGUMENT", err)
	}
	if err := CheckEdgeFilter([]EdgeEnumKind{EdgeEnumKind(XrefReference)}); !cserrors.Is(err, cserrors.InvalidArgument) {
		t.Errorf("CheckEdgeFilter(kythe kind) = %v, want INVALID_ARGUMENT", err)
	}
	if err := CheckEdgeFilter(AllEdgeEnumKinds()); err != nil {
		t.Errorf("CheckEdgeFilter(all) = %v", err)
	}
}

func TestParseKinds(t *testing.T) {
	k, err := ParseKytheXrefKind("CALLED_BY")
	if err != nil || k != XrefCalledBy {
		t.Errorf("ParseKytheXrefKind = %v, %v", k, err)
	}
	if _, err := ParseKytheXrefKind("HAS_DEFINITION"); err == nil {
		t.Error("legacy names are not Kythe kinds")
	}
	e, err := ParseEdgeEnumKind("HAS_DEFINITION")
	if err != nil || e != EdgeHasDefinition {
		t.Errorf("ParseEdgeEnumKind = %v, %v", e, err)
	}
	n, err := ParseKytheNodeKind("RECORD_CLASS")
	if err != nil || n != KytheNodeRecordClass {
		t.Errorf("ParseKytheNodeKind = %v, %v", n, err)
	}
	if XrefCalledBy.String() != "CALLED_BY" {
		t.Errorf("String() = %q", XrefCalledBy.String())
	}
}
