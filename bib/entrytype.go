package bib

import "strings"

// EntryTypeKind is the closed set of recognized @type names.
type EntryTypeKind int

const (
	Article EntryTypeKind = iota
	Book
	MVBook
	InBook
	BookInBook
	SuppBook
	Booklet
	Collection
	MVCollection
	InCollection
	SuppCollection
	Manual
	Misc
	Online
	Patent
	Periodical
	SuppPeriodical
	Proceedings
	MVProceedings
	InProceedings
	Reference
	MVReference
	InReference
	Report
	Set
	Thesis
	Unpublished
	Custom
	Conference
	Electronic
	MasterThesis
	PhdThesis
	TechReport
	Datatype
	OtherEntryType
)

var entryTypeNames = map[string]EntryTypeKind{
	"article":        Article,
	"book":           Book,
	"mvbook":         MVBook,
	"inbook":         InBook,
	"bookinbook":     BookInBook,
	"suppbook":       SuppBook,
	"booklet":        Booklet,
	"collection":     Collection,
	"mvcollection":   MVCollection,
	"incollection":   InCollection,
	"suppcollection": SuppCollection,
	"manual":         Manual,
	"misc":           Misc,
	"online":         Online,
	"patent":         Patent,
	"periodical":     Periodical,
	"suppperiodical": SuppPeriodical,
	"proceedings":    Proceedings,
	"mvproceedings":  MVProceedings,
	"inproceedings":  InProceedings,
	"reference":      Reference,
	"mvreference":    MVReference,
	"inreference":    InReference,
	"report":         Report,
	"set":            Set,
	"thesis":         Thesis,
	"unpublished":    Unpublished,
	"custom":         Custom,
	"conference":     Conference,
	"electronic":     Electronic,
	"masterthesis":   MasterThesis,
	"phdthesis":      PhdThesis,
	"techreport":     TechReport,
	"datatype":       Datatype,
}

var entryTypeStrings = func() map[EntryTypeKind]string {
	m := make(map[EntryTypeKind]string, len(entryTypeNames))
	for name, kind := range entryTypeNames {
		m[kind] = name
	}
	return m
}()

// EntryType is the type of a bibliographic record: a recognized kind, or
// OtherEntryType carrying the original (already-lowercased) name.
type EntryType struct {
	Kind EntryTypeKind
	Name string
}

// ClassifyEntryType maps a @type name to its EntryType, case-insensitively.
func ClassifyEntryType(name string) EntryType {
	lower := strings.ToLower(name)
	if kind, ok := entryTypeNames[lower]; ok {
		return EntryType{Kind: kind, Name: lower}
	}
	return EntryType{Kind: OtherEntryType, Name: lower}
}

// String renders the canonical lowercase name of the entry type.
func (t EntryType) String() string {
	if t.Kind == OtherEntryType {
		return t.Name
	}
	if s, ok := entryTypeStrings[t.Kind]; ok {
		return s
	}
	return t.Name
}
