package bib

// FieldKind is the closed set of ~80 recognized field names, plus
// OtherField for anything not in the table.
type FieldKind int

const (
	FieldAbstract FieldKind = iota
	FieldAfterword
	FieldAnnotation
	FieldAnnotator
	FieldAuthor
	FieldAuthorType
	FieldBookAuthor
	FieldBookPagination
	FieldBookSubtitle
	FieldChapter
	FieldCommentator
	FieldDate
	FieldDoi
	FieldEdition
	FieldEditor
	FieldEditorType
	FieldEid
	FieldEntrySubtype
	FieldEPrint
	FieldEPrintType
	FieldEPrintClass
	FieldEventDate
	FieldEventTitle
	FieldFile
	FieldForeword
	FieldHolder
	FieldHowPublished
	FieldIndexTitle
	FieldInstitution
	FieldIntroduction
	FieldIsan
	FieldIsbn
	FieldIsmn
	FieldIsrn
	FieldIssue
	FieldIssueSubtitle
	FieldIssueTitle
	FieldIswc
	FieldJournalSubtitle
	FieldJournalTitle
	FieldLabel
	FieldLanguage
	FieldLibrary
	FieldLocation
	FieldMainSubtitle
	FieldMainTitle
	FieldMonth
	FieldNote
	FieldNumber
	FieldOrganization
	FieldOrigDate
	FieldOrigLanguage
	FieldOrigLocation
	FieldOrigPublisher
	FieldOrigTitle
	FieldPages
	FieldPageTotal
	FieldPagination
	FieldPart
	FieldPublisher
	FieldPubState
	FieldReprintTitle
	FieldSeries
	FieldShortAuthor
	FieldShortEdition
	FieldShorthand
	FieldShorthandIntro
	FieldShortJournal
	FieldShortSeries
	FieldShortTitle
	FieldSubtitle
	FieldTitle
	FieldTranslator
	FieldType
	FieldUrl
	FieldUrlDate
	FieldVenue
	FieldVersion
	FieldVolume
	FieldYear
	OtherField
)

// fieldNameTable maps a lowercase field name to its FieldKind. "booktitle"
// is deliberately aliased onto FieldBookSubtitle: the vocabulary this
// parser's field taxonomy was distilled from has no distinct book-title
// variant and resolves booktitle that way, so this parser preserves that
// mapping rather than inventing a new variant.
var fieldNameTable = map[string]FieldKind{
	"abstract":        FieldAbstract,
	"afterword":       FieldAfterword,
	"annotation":      FieldAnnotation,
	"annotator":       FieldAnnotator,
	"author":          FieldAuthor,
	"authortype":      FieldAuthorType,
	"bookauthor":      FieldBookAuthor,
	"bookpagination":  FieldBookPagination,
	"booksubtitle":    FieldBookSubtitle,
	"booktitle":       FieldBookSubtitle,
	"chapter":         FieldChapter,
	"commentator":     FieldCommentator,
	"date":            FieldDate,
	"doi":             FieldDoi,
	"edition":         FieldEdition,
	"editor":          FieldEditor,
	"editortype":      FieldEditorType,
	"eid":             FieldEid,
	"entrysubtype":    FieldEntrySubtype,
	"eprint":          FieldEPrint,
	"eprinttype":      FieldEPrintType,
	"eprintclass":     FieldEPrintClass,
	"eventdate":       FieldEventDate,
	"eventtitle":      FieldEventTitle,
	"file":            FieldFile,
	"foreword":        FieldForeword,
	"holder":          FieldHolder,
	"howpublished":    FieldHowPublished,
	"indextitle":      FieldIndexTitle,
	"institution":     FieldInstitution,
	"introduction":    FieldIntroduction,
	"isan":            FieldIsan,
	"isbn":            FieldIsbn,
	"ismn":            FieldIsmn,
	"isrn":            FieldIsrn,
	"issue":           FieldIssue,
	"issuesubtitle":   FieldIssueSubtitle,
	"issuetitle":      FieldIssueTitle,
	"iswc":            FieldIswc,
	"journalsubtitle": FieldJournalSubtitle,
	"journaltitle":    FieldJournalTitle,
	"label":           FieldLabel,
	"language":        FieldLanguage,
	"library":         FieldLibrary,
	"location":        FieldLocation,
	"mainsubtitle":    FieldMainSubtitle,
	"maintitle":       FieldMainTitle,
	"month":           FieldMonth,
	"note":            FieldNote,
	"number":          FieldNumber,
	"organization":    FieldOrganization,
	"origdate":        FieldOrigDate,
	"origlanguage":    FieldOrigLanguage,
	"origlocation":    FieldOrigLocation,
	"origpublisher":   FieldOrigPublisher,
	"origtitle":       FieldOrigTitle,
	"pages":           FieldPages,
	"pagetotal":       FieldPageTotal,
	"pagination":      FieldPagination,
	"part":            FieldPart,
	"publisher":       FieldPublisher,
	"pubstate":        FieldPubState,
	"reprinttitle":    FieldReprintTitle,
	"series":          FieldSeries,
	"shortauthor":     FieldShortAuthor,
	"shortedition":    FieldShortEdition,
	"shorthand":       FieldShorthand,
	"shorthandintro":  FieldShorthandIntro,
	"shortjournal":    FieldShortJournal,
	"shortseries":     FieldShortSeries,
	"shorttitle":      FieldShortTitle,
	"subtitle":        FieldSubtitle,
	"title":           FieldTitle,
	"translator":      FieldTranslator,
	"type":            FieldType,
	"url":             FieldUrl,
	"urldate":         FieldUrlDate,
	"venue":           FieldVenue,
	"version":         FieldVersion,
	"volume":          FieldVolume,
	"year":            FieldYear,
}

// personListFields carries field kinds whose value is a list of Person.
var personListFields = map[FieldKind]bool{
	FieldAnnotator:   true,
	FieldAuthor:      true,
	FieldBookAuthor:  true,
	FieldCommentator: true,
	FieldEditor:      true,
	FieldHolder:      true,
	FieldTranslator:  true,
}

// dateFields carries field kinds coerced with the general date grammar
// (year[-month[-day]]).
var dateFields = map[FieldKind]bool{
	FieldDate:      true,
	FieldEventDate: true,
	FieldOrigDate:  true,
	FieldUrlDate:   true,
}

// ValueKind tags which member of Field actually holds data.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValuePersonList
	ValueDate
	ValueEdition
	ValuePages
	ValuePageTotal
	ValueAbsent
)

// Field is one coerced name=value pair belonging to an Entry. Kind names the
// field (OtherName carries the original name when Kind is OtherField), and
// Value selects which of the typed members is meaningful.
type Field struct {
	Kind      FieldKind
	OtherName string
	Value     ValueKind

	Text    string
	People  []Person
	Date    Date
	Edition Edition
	Pages   []PagesEntry
	Total   uint32
}

// Options tunes field coercion behavior beyond the default grammar.
type Options struct {
	// StrictPageDashes, when true, only accepts a lone ASCII '-' as a page
	// range separator, rejecting en/em dashes and repeated hyphens. The
	// default (false) matches the full accepted separator set.
	StrictPageDashes bool
}

// CoerceField classifies name and parses raw into the Field the vocabulary
// prescribes for it. Unknown names produce an OtherField carrying the
// original name, with no parsed value.
func CoerceField(name, raw string, opts Options) (Field, error) {
	kind, ok := fieldNameTable[name]
	if !ok {
		return Field{Kind: OtherField, OtherName: name, Value: ValueAbsent}, nil
	}

	switch {
	case kind == FieldEntrySubtype:
		// The source vocabulary's EntrySubtype carries no payload, only
		// presence; this grammar always pairs a name with a value, so the
		// raw text is kept as an ordinary string rather than discarded.
		return Field{Kind: kind, Value: ValueString, Text: raw}, nil
	case kind == FieldYear:
		d, err := ParseYear(raw)
		if err != nil {
			return Field{}, err
		}
		return Field{Kind: kind, Value: ValueDate, Date: d}, nil
	case kind == FieldMonth:
		d, err := ParseMonthField(raw)
		if err != nil {
			return Field{}, err
		}
		return Field{Kind: kind, Value: ValueDate, Date: d}, nil
	case dateFields[kind]:
		d, err := ParseDate(raw)
		if err != nil {
			return Field{}, err
		}
		return Field{Kind: kind, Value: ValueDate, Date: d}, nil
	case kind == FieldEdition:
		return Field{Kind: kind, Value: ValueEdition, Edition: ParseEdition(raw)}, nil
	case kind == FieldPages:
		pages := parsePagesWithOptions(raw, opts)
		return Field{Kind: kind, Value: ValuePages, Pages: pages}, nil
	case kind == FieldPageTotal:
		n, err := ParsePageTotal(raw)
		if err != nil {
			return Field{}, err
		}
		return Field{Kind: kind, Value: ValuePageTotal, Total: n}, nil
	case personListFields[kind]:
		return Field{Kind: kind, Value: ValuePersonList, People: ParsePeople(raw)}, nil
	default:
		return Field{Kind: kind, Value: ValueString, Text: raw}, nil
	}
}

// Name renders the field's canonical lowercase name (or, for OtherField,
// the original unrecognized name).
func (f Field) Name() string {
	if f.Kind == OtherField {
		return f.OtherName
	}
	for name, kind := range fieldNameTable {
		if kind == f.Kind && name != "booktitle" {
			return name
		}
	}
	return f.OtherName
}
