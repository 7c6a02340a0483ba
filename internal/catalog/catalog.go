// Package catalog loads regulation catalogs: the versioned part lists builds are
// assembled from.
package catalog

import (
	"bytes"
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/mitchellh/go-homedir"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/messages"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
)

//go:embed data/*.yaml data/catalog.schema.json
var dataFS embed.FS

const (
	dataDir    = "data"
	schemaName = "catalog.schema.json"
)

// Sentinels matched with errors.Is.
var (
	ErrInvalidCatalog = errors.New("invalid catalog")
	ErrUnknownVersion = errors.New("unknown catalog version")
	ErrPartNotFound   = errors.New("part not found")
	ErrAmbiguousPart  = errors.New("ambiguous part")
)

// Catalog is one regulation's parts, indexed by kind and id.
type Catalog struct {
	Version string
	Title   string
	// Source is the embedded name or file path the catalog was read from.
	Source string
	// Digest is the sha256 of the raw document.
	Digest string

	byKind map[parts.Kind][]parts.Part
	byID   map[string]parts.Part
}

type document struct {
	Version string               `yaml:"version"`
	Title   string               `yaml:"title"`
	Parts   map[string][]partDoc `yaml:"parts"`
}

type partDoc struct {
	ID                       string `yaml:"id"`
	Name                     string `yaml:"name"`
	Manufacturer             string `yaml:"manufacturer"`
	Category                 string `yaml:"category"`
	WeaponBay                bool   `yaml:"weapon_bay"`
	Price                    int    `yaml:"price"`
	Weight                   int    `yaml:"weight"`
	ENLoad                   int    `yaml:"en_load"`
	AP                       int    `yaml:"ap"`
	LoadLimit                int    `yaml:"load_limit"`
	ArmsLoadLimit            int    `yaml:"arms_load_limit"`
	ENOutput                 int    `yaml:"en_output"`
	GeneratorOutputAdjective int    `yaml:"generator_output_adjective"`
}

var legCategories = []parts.Category{
	parts.CategoryBipedal,
	parts.CategoryReverseJoint,
	parts.CategoryTetrapod,
	parts.CategoryTank,
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	raw, err := dataFS.ReadFile(path.Join(dataDir, schemaName))
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogSchemaCompileFmt, err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf(messages.CatalogSchemaCompileFmt, err)
	}
	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogSchemaCompileFmt, err)
	}
	return schema, nil
})

// Versions lists the embedded catalog versions in ascending order.
func Versions() []string {
	entries, err := fs.Glob(dataFS, path.Join(dataDir, "*.yaml"))
	if err != nil {
		return nil
	}
	versions := make([]string, 0, len(entries))
	for _, entry := range entries {
		versions = append(versions, strings.TrimSuffix(path.Base(entry), ".yaml"))
	}
	slices.Sort(versions)
	return versions
}

// Latest returns the newest embedded catalog version.
func Latest() string {
	versions := Versions()
	if len(versions) == 0 {
		return ""
	}
	return versions[len(versions)-1]
}

// Load parses the embedded catalog for version. An empty version selects Latest.
func Load(version string) (*Catalog, error) {
	if version == "" {
		version = Latest()
	}
	if !slices.Contains(Versions(), version) {
		return nil, fmt.Errorf("%w: "+messages.CatalogUnknownVersionFmt, ErrUnknownVersion, version, strings.Join(Versions(), ", "))
	}
	name := path.Join(dataDir, version+".yaml")
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogReadFmt, name, err)
	}
	return Parse(data, name)
}

// LoadFile parses a catalog from disk. A leading ~ expands to the home directory.
func LoadFile(file string) (*Catalog, error) {
	expanded, err := homedir.Expand(file)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogReadFmt, file, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return nil, fmt.Errorf(messages.CatalogReadFmt, file, err)
	}
	return Parse(data, expanded)
}

// Open loads file when it is set and the embedded version otherwise.
func Open(version string, file string) (*Catalog, error) {
	if file != "" {
		return LoadFile(file)
	}
	return Load(version)
}

// Parse validates data against the catalog schema and decodes it.
// Optional kinds without a not-equipped entry receive the standard sentinel.
func Parse(data []byte, source string) (*Catalog, error) {
	if err := validateSchema(data, source); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf(messages.CatalogParseFmt, source, err)
	}

	c := &Catalog{
		Version: doc.Version,
		Title:   doc.Title,
		Source:  source,
		Digest:  sha256Hex(data),
		byKind:  make(map[parts.Kind][]parts.Part, len(parts.Kinds())),
		byID:    make(map[string]parts.Part),
	}
	for _, kind := range parts.Kinds() {
		if err := c.addKind(kind, doc.Parts[string(kind)]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) addKind(kind parts.Kind, entries []partDoc) error {
	sentinels := 0
	for i, entry := range entries {
		p := entry.part(kind)
		if p.ID == "" {
			return fmt.Errorf("%w: "+messages.CatalogEmptyIDFmt, ErrInvalidCatalog, c.Source, kind, i)
		}
		if _, dup := c.byID[p.ID]; dup {
			return fmt.Errorf("%w: "+messages.CatalogDuplicateIDFmt, ErrInvalidCatalog, c.Source, p.ID)
		}
		if p.IsNotEquipped() {
			if !kind.Optional() {
				return fmt.Errorf("%w: "+messages.CatalogSentinelKindFmt, ErrInvalidCatalog, c.Source, kind, p.ID)
			}
			sentinels++
		}
		if kind == parts.KindLegs && !slices.Contains(legCategories, p.Category) {
			return fmt.Errorf("%w: "+messages.CatalogLegCategoryFmt, ErrInvalidCatalog, c.Source, p.ID, p.Category)
		}
		c.add(p)
	}

	if sentinels > 1 {
		return fmt.Errorf("%w: "+messages.CatalogSentinelCountFmt, ErrInvalidCatalog, c.Source, kind, sentinels)
	}
	if sentinels == 0 {
		if sentinel, ok := parts.NotEquipped(kind); ok {
			if _, dup := c.byID[sentinel.ID]; dup {
				return fmt.Errorf("%w: "+messages.CatalogDuplicateIDFmt, ErrInvalidCatalog, c.Source, sentinel.ID)
			}
			c.add(sentinel)
		}
	}
	return nil
}

func (c *Catalog) add(p parts.Part) {
	c.byKind[p.Kind] = append(c.byKind[p.Kind], p)
	c.byID[p.ID] = p
}

func (d partDoc) part(kind parts.Kind) parts.Part {
	return parts.Part{
		ID:                       strings.TrimSpace(d.ID),
		Name:                     strings.TrimSpace(d.Name),
		Kind:                     kind,
		Category:                 parts.Category(d.Category),
		Manufacturer:             d.Manufacturer,
		Price:                    d.Price,
		Weight:                   d.Weight,
		ENLoad:                   d.ENLoad,
		AP:                       d.AP,
		WeaponBay:                d.WeaponBay,
		LoadLimit:                d.LoadLimit,
		ArmsLoadLimit:            d.ArmsLoadLimit,
		ENOutput:                 d.ENOutput,
		GeneratorOutputAdjective: d.GeneratorOutputAdjective,
	}
}

// Parts returns the parts of kind in catalog order, sentinel included.
func (c *Catalog) Parts(kind parts.Kind) []parts.Part {
	return append([]parts.Part(nil), c.byKind[kind]...)
}

// Len returns the number of parts, sentinels included.
func (c *Catalog) Len() int {
	return len(c.byID)
}

// ByID returns the part with id.
func (c *Catalog) ByID(id string) (parts.Part, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Pool returns every part that may be mounted on slot.
func (c *Catalog) Pool(slot parts.Slot) []parts.Part {
	var pool []parts.Part
	for _, kind := range parts.Kinds() {
		for _, p := range c.byKind[kind] {
			if slot.Accepts(p) {
				pool = append(pool, p)
			}
		}
	}
	return pool
}

// Candidates returns the twelve pools the random assembler draws from.
func (c *Catalog) Candidates() parts.Candidates {
	pools := make(map[parts.Slot][]parts.Part, len(parts.Slots()))
	for _, slot := range parts.Slots() {
		pools[slot] = c.Pool(slot)
	}
	return parts.NewCandidates(pools)
}

func validateSchema(data []byte, source string) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf(messages.CatalogParseFmt, source, err)
	}
	// The validator expects encoding/json value types.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf(messages.CatalogParseFmt, source, err)
	}
	var v any
	if err := json.Unmarshal(encoded, &v); err != nil {
		return fmt.Errorf(messages.CatalogParseFmt, source, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: "+messages.CatalogSchemaFmt, ErrInvalidCatalog, source, err)
	}
	return nil
}

func sha256Hex(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
