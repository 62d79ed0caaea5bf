package services

import (
	"errors"
	"time"

	"github.com/minhngct/vitatrack/internal/models"
)

var (
	ErrProfileMissing         = errors.New("profile missing for user")
	ErrHealthRecordLoadFailed = errors.New("load health record failed")
	ErrHealthRecordSaveFailed = errors.New("save health record failed")
)

// HealthRecordPatch carries the optional fields of an upsert request. Nil
// means "leave the stored value alone"; only present fields are merged.
type HealthRecordPatch struct {
	Date       *time.Time
	Weight     *float64
	HeartRate  *int
	SleepHours *float64
	Note       *string
}

type HealthRecordStore interface {
	ListByUser(userID uint) ([]models.HealthRecord, error)
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.HealthRecord, error)
	FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.HealthRecord, bool, error)
	UpsertByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time, mutate func(record *models.HealthRecord, found bool) error) (models.HealthRecord, bool, error)
}

type ProfileStore interface {
	FindByUserID(userID uint) (models.Profile, bool, error)
}

type HealthRecordService struct {
	records  HealthRecordStore
	profiles ProfileStore
	location *time.Location
	now      func() time.Time
}

func NewHealthRecordService(records HealthRecordStore, profiles ProfileStore, location *time.Location) *HealthRecordService {
	if location == nil {
		location = time.UTC
	}
	return &HealthRecordService{
		records:  records,
		profiles: profiles,
		location: location,
		now:      time.Now,
	}
}

// Upsert merges the patch over the record stored for (user, day), creating
// the row on first write. BMI is recomputed from the merged weight and the
// profile height; when either is unusable the field is left unset instead of
// failing the whole operation. Returns whether an existing row was updated.
func (service *HealthRecordService) Upsert(userID uint, patch HealthRecordPatch) (models.HealthRecord, bool, error) {
	profile, found, err := service.profiles.FindByUserID(userID)
	if err != nil {
		return models.HealthRecord{}, false, ErrHealthRecordLoadFailed
	}
	if !found {
		return models.HealthRecord{}, false, ErrProfileMissing
	}

	day := service.now()
	if patch.Date != nil {
		day = *patch.Date
	}
	dayStart, dayEnd := DayRange(day, service.location)

	record, wasUpdate, err := service.records.UpsertByUserAndDay(userID, dayStart, dayEnd, func(record *models.HealthRecord, recordFound bool) error {
		if patch.Weight != nil {
			record.Weight = patch.Weight
		}
		if patch.HeartRate != nil {
			record.HeartRate = patch.HeartRate
		}
		if patch.SleepHours != nil {
			record.SleepHours = patch.SleepHours
		}
		if patch.Note != nil {
			record.Note = *patch.Note
		}

		record.Bmi = nil
		if record.Weight != nil && profile.HeightCm != nil && *profile.HeightCm > 0 {
			if bmi, bmiErr := BMI(*record.Weight, *profile.HeightCm); bmiErr == nil {
				record.Bmi = &bmi
			}
		}
		return nil
	})
	if err != nil {
		return models.HealthRecord{}, false, ErrHealthRecordSaveFailed
	}
	return record, wasUpdate, nil
}

func (service *HealthRecordService) ListForUser(userID uint) ([]models.HealthRecord, error) {
	return service.records.ListByUser(userID)
}

// FetchByDate returns the stored record for a day, or (zero, false) when the
// user has not logged that day yet.
func (service *HealthRecordService) FetchByDate(userID uint, day time.Time) (models.HealthRecord, bool, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.records.FindByUserAndDayRange(userID, dayStart, dayEnd)
}

// FetchRecentDays returns records of the trailing window ending today,
// oldest first.
func (service *HealthRecordService) FetchRecentDays(userID uint, days int) ([]models.HealthRecord, error) {
	if days < 1 {
		days = 1
	}
	today := DateAtLocation(service.now(), service.location)
	fromStart := today.AddDate(0, 0, -(days - 1))
	return service.records.ListByUserRange(userID, fromStart, today.AddDate(0, 0, 1))
}
