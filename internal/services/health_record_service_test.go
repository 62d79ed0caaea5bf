package services

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/minhngct/vitatrack/internal/models"
)

type healthRecordStoreStub struct {
	entries   map[string]models.HealthRecord
	nextID    uint
	upsertErr error
}

func newHealthRecordStoreStub() *healthRecordStoreStub {
	return &healthRecordStoreStub{
		entries: make(map[string]models.HealthRecord),
		nextID:  1,
	}
}

func (stub *healthRecordStoreStub) dayKey(value time.Time) string {
	return value.Format("2006-01-02")
}

func (stub *healthRecordStoreStub) ListByUser(userID uint) ([]models.HealthRecord, error) {
	records := make([]models.HealthRecord, 0)
	for _, record := range stub.entries {
		if record.UserID == userID {
			records = append(records, record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.After(records[j].Date)
	})
	return records, nil
}

func (stub *healthRecordStoreStub) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.HealthRecord, error) {
	records := make([]models.HealthRecord, 0)
	for _, record := range stub.entries {
		if record.UserID != userID {
			continue
		}
		if record.Date.Before(fromStart) || !record.Date.Before(toEnd) {
			continue
		}
		records = append(records, record)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}

func (stub *healthRecordStoreStub) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.HealthRecord, bool, error) {
	record, ok := stub.entries[stub.dayKey(dayStart)]
	if !ok || record.UserID != userID {
		return models.HealthRecord{}, false, nil
	}
	return record, true, nil
}

func (stub *healthRecordStoreStub) UpsertByUserAndDay(userID uint, dayStart time.Time, dayEnd time.Time, mutate func(record *models.HealthRecord, found bool) error) (models.HealthRecord, bool, error) {
	if stub.upsertErr != nil {
		return models.HealthRecord{}, false, stub.upsertErr
	}

	key := stub.dayKey(dayStart)
	record, found := stub.entries[key]
	if found && record.UserID != userID {
		record, found = models.HealthRecord{}, false
	}

	if err := mutate(&record, found); err != nil {
		return models.HealthRecord{}, false, err
	}

	if !found {
		record.ID = stub.nextID
		stub.nextID++
		record.UserID = userID
		record.Date = dayStart
		record.CreatedAt = time.Now()
	}
	stub.entries[key] = record
	return record, found, nil
}

type profileStoreStub struct {
	profiles map[uint]models.Profile
	findErr  error
}

func newProfileStoreStub() *profileStoreStub {
	return &profileStoreStub{profiles: make(map[uint]models.Profile)}
}

func (stub *profileStoreStub) FindByUserID(userID uint) (models.Profile, bool, error) {
	if stub.findErr != nil {
		return models.Profile{}, false, stub.findErr
	}
	profile, ok := stub.profiles[userID]
	return profile, ok, nil
}

func floatPtr(value float64) *float64 {
	return &value
}

func intPtr(value int) *int {
	return &value
}

func stringPtr(value string) *string {
	return &value
}

func timePtr(value time.Time) *time.Time {
	return &value
}

func newHealthRecordServiceForTest(profiles *profileStoreStub, records *healthRecordStoreStub) *HealthRecordService {
	service := NewHealthRecordService(records, profiles, time.UTC)
	service.now = func() time.Time {
		return time.Date(2024, 1, 10, 15, 30, 0, 0, time.UTC)
	}
	return service
}

func TestUpsertHealthRecordCreatesThenUpdatesSameDay(t *testing.T) {
	records := newHealthRecordStoreStub()
	profiles := newProfileStoreStub()
	profiles.profiles[1] = models.Profile{UserID: 1, HeightCm: floatPtr(175)}
	service := newHealthRecordServiceForTest(profiles, records)

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	first, wasUpdate, err := service.Upsert(1, HealthRecordPatch{Date: timePtr(day), Weight: floatPtr(70)})
	if err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if wasUpdate {
		t.Fatal("expected first upsert to create, not update")
	}
	if first.Bmi == nil || *first.Bmi != 22.86 {
		t.Fatalf("expected BMI 22.86 after first upsert, got %v", first.Bmi)
	}

	second, wasUpdate, err := service.Upsert(1, HealthRecordPatch{Date: timePtr(day), Weight: floatPtr(80)})
	if err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}
	if !wasUpdate {
		t.Fatal("expected second upsert to update the existing row")
	}
	if second.ID != first.ID {
		t.Fatalf("expected the same row to be updated, got ids %d and %d", first.ID, second.ID)
	}
	if len(records.entries) != 1 {
		t.Fatalf("expected exactly one stored record, got %d", len(records.entries))
	}
	if second.Bmi == nil || *second.Bmi != 26.12 {
		t.Fatalf("expected BMI 26.12 from the second weight, got %v", second.Bmi)
	}
}

func TestUpsertHealthRecordMergesOnlySuppliedFields(t *testing.T) {
	records := newHealthRecordStoreStub()
	profiles := newProfileStoreStub()
	profiles.profiles[1] = models.Profile{UserID: 1, HeightCm: floatPtr(175)}
	service := newHealthRecordServiceForTest(profiles, records)

	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if _, _, err := service.Upsert(1, HealthRecordPatch{
		Date:       timePtr(day),
		Weight:     floatPtr(70),
		HeartRate:  intPtr(62),
		SleepHours: floatPtr(7.5),
		Note:       stringPtr("rest day"),
	}); err != nil {
		t.Fatalf("seed upsert failed: %v", err)
	}

	updated, _, err := service.Upsert(1, HealthRecordPatch{Date: timePtr(day), HeartRate: intPtr(58)})
	if err != nil {
		t.Fatalf("partial upsert failed: %v", err)
	}

	if updated.Weight == nil || *updated.Weight != 70 {
		t.Fatalf("expected untouched weight 70, got %v", updated.Weight)
	}
	if updated.HeartRate == nil || *updated.HeartRate != 58 {
		t.Fatalf("expected heart rate 58, got %v", updated.HeartRate)
	}
	if updated.SleepHours == nil || *updated.SleepHours != 7.5 {
		t.Fatalf("expected untouched sleep hours 7.5, got %v", updated.SleepHours)
	}
	if updated.Note != "rest day" {
		t.Fatalf("expected untouched note, got %q", updated.Note)
	}
	if updated.Bmi == nil || *updated.Bmi != 22.86 {
		t.Fatalf("expected BMI recomputed from the kept weight, got %v", updated.Bmi)
	}
}

func TestUpsertHealthRecordLeavesBMIUnsetWithoutHeight(t *testing.T) {
	records := newHealthRecordStoreStub()
	profiles := newProfileStoreStub()
	profiles.profiles[1] = models.Profile{UserID: 1}
	service := newHealthRecordServiceForTest(profiles, records)

	record, _, err := service.Upsert(1, HealthRecordPatch{Weight: floatPtr(70)})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	if record.Bmi != nil {
		t.Fatalf("expected BMI to stay unset without a profile height, got %v", *record.Bmi)
	}
}

func TestUpsertHealthRecordDefaultsToToday(t *testing.T) {
	records := newHealthRecordStoreStub()
	profiles := newProfileStoreStub()
	profiles.profiles[1] = models.Profile{UserID: 1, HeightCm: floatPtr(175)}
	service := newHealthRecordServiceForTest(profiles, records)

	record, _, err := service.Upsert(1, HealthRecordPatch{Weight: floatPtr(70)})
	if err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	expected := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	if !record.Date.Equal(expected) {
		t.Fatalf("expected record date %v, got %v", expected, record.Date)
	}
}

func TestUpsertHealthRecordRequiresProfile(t *testing.T) {
	service := newHealthRecordServiceForTest(newProfileStoreStub(), newHealthRecordStoreStub())

	if _, _, err := service.Upsert(42, HealthRecordPatch{Weight: floatPtr(70)}); !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("expected ErrProfileMissing, got %v", err)
	}
}

func TestUpsertHealthRecordWrapsStoreFailure(t *testing.T) {
	records := newHealthRecordStoreStub()
	records.upsertErr = errors.New("disk full")
	profiles := newProfileStoreStub()
	profiles.profiles[1] = models.Profile{UserID: 1}
	service := newHealthRecordServiceForTest(profiles, records)

	if _, _, err := service.Upsert(1, HealthRecordPatch{}); !errors.Is(err, ErrHealthRecordSaveFailed) {
		t.Fatalf("expected ErrHealthRecordSaveFailed, got %v", err)
	}
}
