package entities

import (
	"github.com/google/uuid"
)

// Kind identifies a resolvable entity kind. Anything resolvable by id with
// named relation path sets can be registered as a kind.
type Kind string

const (
	KindEdition Kind = "edition"
)

var kindLabels = map[Kind]string{
	KindEdition: "Edition",
}

func (k Kind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

// Label returns the display name of the kind, e.g. "Edition".
func (k Kind) Label() string {
	if label, ok := kindLabels[k]; ok {
		return label
	}
	return string(k)
}

// Alias is a single name for an entity in some language.
type Alias struct {
	Name     string  `json:"name"`
	SortName string  `json:"sortName"`
	Language *string `json:"language"`
	Primary  bool    `json:"primary"`
}

// Identifier is an external identifier attached to an entity, such as an ISBN.
type Identifier struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// EntityRef is the minimal descriptor of a relationship endpoint.
type EntityRef struct {
	BBID string  `json:"bbid"`
	Name *string `json:"name"`
}

// Relationship is a typed, directed association between two entities.
type Relationship struct {
	Type         string            `json:"type"`
	SourceEntity EntityRef         `json:"sourceEntity"`
	TargetEntity EntityRef         `json:"targetEntity"`
	Attributes   map[string]string `json:"attributes"`
}

// ReleaseEvent records a (possibly partial) date an edition was released.
type ReleaseEvent struct {
	Date *string `json:"date"`
}

// Entity is an entity resolved from the store together with the relation
// sub-structures named by the path set it was resolved with. Relations
// outside that set are absent, never empty: accessors for relations that
// were not requested return nil regardless of what the store holds.
//
// Entities are immutable after construction and live for a single lookup.
type Entity struct {
	bbid uuid.UUID
	kind Kind

	name           string
	disambiguation *string
	pages          *int

	defaultAlias  *Alias
	formatName    *string
	statusName    *string
	languages     []string
	releaseEvents []ReleaseEvent
	aliases       []Alias
	identifiers   []Identifier
	relationships []Relationship

	loaded PathSet
}

type EntityDecoratorFunc func(e *Entity)

// New creates a resolved entity. The loaded set records exactly which
// relation paths the store populated; decorators attach the scalar
// attributes and relation contents.
func New(bbid uuid.UUID, kind Kind, loaded PathSet, decorators ...EntityDecoratorFunc) *Entity {
	e := &Entity{
		bbid:   bbid,
		kind:   kind,
		loaded: loaded,
	}

	for _, decorate := range decorators {
		decorate(e)
	}

	return e
}

func Name(name string) EntityDecoratorFunc {
	return func(e *Entity) { e.name = name }
}

func Disambiguation(text string) EntityDecoratorFunc {
	return func(e *Entity) { e.disambiguation = &text }
}

func Pages(count int) EntityDecoratorFunc {
	return func(e *Entity) { e.pages = &count }
}

func DefaultAlias(alias Alias) EntityDecoratorFunc {
	return func(e *Entity) { e.defaultAlias = &alias }
}

func Format(name string) EntityDecoratorFunc {
	return func(e *Entity) { e.formatName = &name }
}

func Status(name string) EntityDecoratorFunc {
	return func(e *Entity) { e.statusName = &name }
}

func Languages(names []string) EntityDecoratorFunc {
	return func(e *Entity) { e.languages = append([]string{}, names...) }
}

func ReleaseEvents(events []ReleaseEvent) EntityDecoratorFunc {
	return func(e *Entity) { e.releaseEvents = append([]ReleaseEvent{}, events...) }
}

func Aliases(aliases []Alias) EntityDecoratorFunc {
	return func(e *Entity) { e.aliases = append([]Alias{}, aliases...) }
}

func Identifiers(identifiers []Identifier) EntityDecoratorFunc {
	return func(e *Entity) { e.identifiers = append([]Identifier{}, identifiers...) }
}

func Relationships(relationships []Relationship) EntityDecoratorFunc {
	return func(e *Entity) { e.relationships = append([]Relationship{}, relationships...) }
}

func (e Entity) BBID() uuid.UUID {
	return e.bbid
}

func (e Entity) Kind() Kind {
	return e.kind
}

func (e Entity) EntityName() string {
	return e.name
}

func (e Entity) EntityDisambiguation() *string {
	return e.disambiguation
}

func (e Entity) PageCount() *int {
	return e.pages
}

func (e Entity) ResolvedDefaultAlias() *Alias {
	if e.defaultAlias == nil {
		return nil
	}
	alias := *e.defaultAlias
	return &alias
}

func (e Entity) FormatName() *string {
	return e.formatName
}

func (e Entity) StatusName() *string {
	return e.statusName
}

func (e Entity) LanguageNames() []string {
	return append([]string{}, e.languages...)
}

func (e Entity) ResolvedReleaseEvents() []ReleaseEvent {
	return append([]ReleaseEvent{}, e.releaseEvents...)
}

func (e Entity) ResolvedAliases() []Alias {
	return append([]Alias{}, e.aliases...)
}

func (e Entity) ResolvedIdentifiers() []Identifier {
	return append([]Identifier{}, e.identifiers...)
}

func (e Entity) ResolvedRelationships() []Relationship {
	return append([]Relationship{}, e.relationships...)
}

// LoadedWith reports whether this entity was resolved with at least the
// given paths populated.
func (e Entity) LoadedWith(paths PathSet) bool {
	return e.loaded.ContainsAll(paths)
}

func (e Entity) Loaded() PathSet {
	return e.loaded
}
