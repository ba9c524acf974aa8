package store

import (
	"path/filepath"

	logrus "github.com/sirupsen/logrus"

	"utms/internal/models"
)

// The loaders below read a collection file straight from dir, independent
// of any open Store and its cached state. Absent or corrupt files yield an
// empty slice.

func LoadStudents(dir string, log logrus.FieldLogger) []*models.Student {
	return loadItems(filepath.Join(dir, StudentsFile), studentCodec, loaderLog(log, "students"))
}

func LoadLecturers(dir string, log logrus.FieldLogger) []*models.Lecturer {
	return loadItems(filepath.Join(dir, LecturersFile), lecturerCodec, loaderLog(log, "lecturers"))
}

func LoadOfficers(dir string, log logrus.FieldLogger) []*models.TransportOfficer {
	return loadItems(filepath.Join(dir, OfficersFile), officerCodec, loaderLog(log, "officers"))
}

func LoadVehicles(dir string, log logrus.FieldLogger) []models.Vehicle {
	return loadItems(filepath.Join(dir, VehiclesFile), vehicleCodec, loaderLog(log, "vehicles"))
}

// SaveVehicle re-reads the vehicles file, appends v and rewrites it. An open
// Store on the same directory will not see the change until reopened.
func SaveVehicle(dir string, v models.Vehicle, log logrus.FieldLogger) Result {
	log = loaderLog(log, "vehicles")
	if isNilVehicle(v) {
		log.Warn("Ignoring nil entity")
		return Result{Err: ErrNilEntity}
	}
	vehicles := LoadVehicles(dir, log)
	vehicles = append(vehicles, v.Clone())
	return saveItems(filepath.Join(dir, VehiclesFile), vehicles, vehicleCodec, log)
}

func loaderLog(log logrus.FieldLogger, collection string) logrus.FieldLogger {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return log.WithField("collection", collection)
}
