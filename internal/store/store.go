// Package store keeps the member and vehicle collections in memory and
// mirrors each one to its own JSON file. Every add rewrites the whole file.
//
// Storage failures never reach the caller as a panic or abort: loads fall
// back to an empty collection and failed saves keep the change in memory.
// Both are logged, and adds return a Result for callers that want to know.
//
// A Store serialises access per collection. Two Stores opened on the same
// directory do not coordinate with each other.
package store

import (
	"errors"
	"os"
	"path/filepath"

	logrus "github.com/sirupsen/logrus"

	"utms/internal/models"
)

const (
	DefaultDir    = "utms_data"
	StudentsFile  = "students.json"
	LecturersFile = "lecturers.json"
	OfficersFile  = "officers.json"
	VehiclesFile  = "vehicles.json"
)

// ErrNilEntity is reported when a nil entity is added.
var ErrNilEntity = errors.New("nil entity")

// Result reports the outcome of persisting a collection after an add.
type Result struct {
	Path     string
	Count    int    // items in the collection after the add
	Revision string // revision written to the file's metadata
	Err      error
}

// OK reports whether the collection reached disk.
func (r Result) OK() bool { return r.Err == nil }

type Store struct {
	dir string
	log logrus.FieldLogger

	students  *collection[*models.Student]
	lecturers *collection[*models.Lecturer]
	officers  *collection[*models.TransportOfficer]
	vehicles  *collection[models.Vehicle]
}

// Open creates dir if needed and loads all four collections from it.
// It does not fail; see the package documentation.
func Open(dir string, log logrus.FieldLogger) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	log = log.WithField("data_dir", dir)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.WithError(err).Error("Failed to create data directory")
	}

	s := &Store{
		dir:       dir,
		log:       log,
		students:  openCollection("students", filepath.Join(dir, StudentsFile), studentCodec, log),
		lecturers: openCollection("lecturers", filepath.Join(dir, LecturersFile), lecturerCodec, log),
		officers:  openCollection("officers", filepath.Join(dir, OfficersFile), officerCodec, log),
		vehicles:  openCollection("vehicles", filepath.Join(dir, VehiclesFile), vehicleCodec, log),
	}

	log.WithFields(logrus.Fields{
		"students":  s.students.count(),
		"lecturers": s.lecturers.count(),
		"officers":  s.officers.count(),
		"vehicles":  s.vehicles.count(),
	}).Info("Store opened")
	return s
}

// Dir is the data directory the store mirrors to.
func (s *Store) Dir() string { return s.dir }

// AddStudent appends a copy of st and rewrites the students file.
func (s *Store) AddStudent(st *models.Student) Result {
	if st == nil {
		return s.rejectNil("students")
	}
	return s.students.add(st)
}

// AddLecturer appends a copy of l and rewrites the lecturers file.
func (s *Store) AddLecturer(l *models.Lecturer) Result {
	if l == nil {
		return s.rejectNil("lecturers")
	}
	return s.lecturers.add(l)
}

// AddOfficer appends a copy of o and rewrites the officers file.
func (s *Store) AddOfficer(o *models.TransportOfficer) Result {
	if o == nil {
		return s.rejectNil("officers")
	}
	return s.officers.add(o)
}

// AddVehicle appends a copy of v and rewrites the vehicles file.
func (s *Store) AddVehicle(v models.Vehicle) Result {
	if isNilVehicle(v) {
		return s.rejectNil("vehicles")
	}
	return s.vehicles.add(v)
}

// Students returns copies of the stored students in insertion order.
func (s *Store) Students() []*models.Student { return s.students.snapshot() }

func (s *Store) Lecturers() []*models.Lecturer { return s.lecturers.snapshot() }

func (s *Store) Officers() []*models.TransportOfficer { return s.officers.snapshot() }

func (s *Store) Vehicles() []models.Vehicle { return s.vehicles.snapshot() }

func (s *Store) rejectNil(collection string) Result {
	s.log.WithField("collection", collection).Warn("Ignoring nil entity")
	return Result{Err: ErrNilEntity}
}

func isNilVehicle(v models.Vehicle) bool {
	switch v := v.(type) {
	case *models.Bus:
		return v == nil
	case *models.Van:
		return v == nil
	}
	return v == nil
}
