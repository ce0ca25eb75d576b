package catalog

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// CurrentVersion is the format marker written by the persistence layer.
const CurrentVersion = 1

// Database is the root of the record tree: it owns every Department.
type Database struct {
	version     int
	departments map[string]*Department
}

type databaseDoc struct {
	Version     int                    `yaml:"version"`
	Departments map[string]*Department `yaml:"departments"`
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{
		version:     CurrentVersion,
		departments: make(map[string]*Department),
	}
}

// Version returns the format marker the database was loaded with.
func (db *Database) Version() int {
	return db.version
}

// DepartmentMapping returns the live department mapping.
func (db *Database) DepartmentMapping() map[string]*Department {
	return db.departments
}

// Department looks up a department by code.
func (db *Database) Department(code string) (*Department, bool) {
	d, ok := db.departments[code]
	return d, ok
}

// AddDepartment stores d under its own code.
func (db *Database) AddDepartment(d *Department) {
	db.departments[d.Code()] = d
}

// SetMapping replaces every department at once.
func (db *Database) SetMapping(mapping map[string]*Department) {
	if mapping == nil {
		mapping = make(map[string]*Department)
	}
	db.departments = mapping
}

// Display renders each department under a header, in department-code order.
func (db *Database) Display() string {
	var b strings.Builder
	for _, code := range sortedKeys(db.departments) {
		fmt.Fprintf(&b, "For the %s department:\n", code)
		b.WriteString(db.departments[code].Display())
		b.WriteString("\n")
	}
	return b.String()
}

// MarshalYAML implements yaml.Marshaler.
func (db *Database) MarshalYAML() (interface{}, error) {
	return databaseDoc{
		Version:     db.version,
		Departments: db.departments,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (db *Database) UnmarshalYAML(value *yaml.Node) error {
	var doc databaseDoc
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode database: %w", err)
	}
	if doc.Version == 0 {
		doc.Version = CurrentVersion
	}
	if doc.Departments == nil {
		doc.Departments = make(map[string]*Department)
	}
	db.version = doc.Version
	db.departments = doc.Departments
	return nil
}

// Serialize writes the full department tree as YAML.
func (db *Database) Serialize(w io.Writer) error {
	return encode(w, db)
}

// Deserialize replaces the database's contents with the YAML read from r.
func (db *Database) Deserialize(r io.Reader) error {
	return yaml.NewDecoder(r).Decode(db)
}
