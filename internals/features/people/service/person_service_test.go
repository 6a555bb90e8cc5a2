package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"careconnect_backend/internals/configs"
	database "careconnect_backend/internals/databases"
	"careconnect_backend/internals/features/people/dto"
	"careconnect_backend/internals/features/people/model"
	"careconnect_backend/internals/helpers/jsonlist"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.ConnectDB(configs.DatabaseConfig{
		Driver: configs.DriverSQLite,
		DSN:    "file::memory:",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func newServices(t *testing.T) (*PersonService, *ResourceService, *gorm.DB) {
	db := newTestDB(t)
	v := NewValidator()
	return NewPersonService(db, v), NewResourceService(db, v), db
}

func ptr[T any](v T) *T { return &v }

func annInput() dto.PersonInput {
	return dto.PersonInput{
		Name:               "Ann",
		Age:                ptr(34),
		DisabilityType:     "mobility",
		DisabilitySeverity: "moderate",
	}
}

func TestCreatePersonScenario(t *testing.T) {
	persons, _, _ := newServices(t)
	ctx := context.Background()

	p, err := persons.CreatePerson(ctx, annInput())
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, "Ann", p.Name)
	assert.Equal(t, 34, p.Age)
	assert.Equal(t, "mobility", p.DisabilityType)
	assert.Equal(t, "moderate", p.DisabilitySeverity)
	assert.Nil(t, p.Gender)
	assert.Equal(t, []dto.ResourceResponse{}, p.Resources)
	assert.Equal(t, []string{}, p.MedicalConditions)
}

func TestCreatePersonStoresNullForAbsentConditions(t *testing.T) {
	persons, _, db := newServices(t)

	p, err := persons.CreatePerson(context.Background(), annInput())
	require.NoError(t, err)

	var row model.PersonModel
	require.NoError(t, db.First(&row, "id = ?", p.ID).Error)
	assert.Nil(t, row.MedicalConditions)
}

func TestCreatePersonKeepsConditionOrder(t *testing.T) {
	persons, _, db := newServices(t)
	in := annInput()
	in.MedicalConditions = []string{"epilepsy", "asthma", "epilepsy"}

	p, err := persons.CreatePerson(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, []string{"epilepsy", "asthma", "epilepsy"}, p.MedicalConditions)

	var row model.PersonModel
	require.NoError(t, db.First(&row, "id = ?", p.ID).Error)
	require.NotNil(t, row.MedicalConditions)
	assert.Equal(t, `["epilepsy","asthma","epilepsy"]`, *row.MedicalConditions)

	got, err := persons.GetPerson(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, in.MedicalConditions, got.MedicalConditions)
}

func TestCreatePersonIdenticalInputsGetDistinctIDs(t *testing.T) {
	persons, _, _ := newServices(t)
	ctx := context.Background()

	a, err := persons.CreatePerson(ctx, annInput())
	require.NoError(t, err)
	b, err := persons.CreatePerson(ctx, annInput())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)

	all, err := persons.ListPersons(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCreatePersonValidation(t *testing.T) {
	cases := map[string]struct {
		mutate func(*dto.PersonInput)
		field  string
	}{
		"missing name":     {func(in *dto.PersonInput) { in.Name = "" }, "name"},
		"blank name":       {func(in *dto.PersonInput) { in.Name = "   " }, "name"},
		"missing age":      {func(in *dto.PersonInput) { in.Age = nil }, "age"},
		"negative age":     {func(in *dto.PersonInput) { in.Age = ptr(-1) }, "age"},
		"absurd age":       {func(in *dto.PersonInput) { in.Age = ptr(400) }, "age"},
		"missing type":     {func(in *dto.PersonInput) { in.DisabilityType = "" }, "disability_type"},
		"missing severity": {func(in *dto.PersonInput) { in.DisabilitySeverity = "" }, "disability_severity"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			persons, _, _ := newServices(t)
			in := annInput()
			tc.mutate(&in)

			_, err := persons.CreatePerson(context.Background(), in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Contains(t, ve.Fields, tc.field)

			all, err := persons.ListPersons(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all, "nothing may be written on validation failure")
		})
	}
}

func TestCreatePersonAcceptsZeroAge(t *testing.T) {
	persons, _, _ := newServices(t)
	in := annInput()
	in.Age = ptr(0)

	p, err := persons.CreatePerson(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Age)
}

func TestCreatePersonNormalizesText(t *testing.T) {
	persons, _, _ := newServices(t)
	in := annInput()
	in.Name = "  Ann  "
	in.Gender = ptr("   ")
	in.Address = ptr(" 12 Main St ")

	p, err := persons.CreatePerson(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Ann", p.Name)
	assert.Nil(t, p.Gender)
	require.NotNil(t, p.Address)
	assert.Equal(t, "12 Main St", *p.Address)
}

func TestGetPersonNotFound(t *testing.T) {
	persons, _, _ := newServices(t)

	_, err := persons.GetPerson(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPersonNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetPersonIncludesResources(t *testing.T) {
	persons, resources, _ := newServices(t)
	ctx := context.Background()

	p, err := persons.CreatePerson(ctx, annInput())
	require.NoError(t, err)
	_, err = resources.CreateResource(ctx, p.ID, dto.ResourceInput{Name: "Wheelchair"})
	require.NoError(t, err)
	_, err = resources.CreateResource(ctx, p.ID, dto.ResourceInput{Name: "Ramp", Description: ptr("portable")})
	require.NoError(t, err)

	got, err := persons.GetPerson(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Resources, 2)
	assert.Equal(t, "Wheelchair", got.Resources[0].Name)
	assert.Equal(t, "Ramp", got.Resources[1].Name)
	for _, r := range got.Resources {
		assert.Equal(t, p.ID, r.PersonID)
	}

	all, err := persons.ListPersons(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Len(t, all[0].Resources, 2)
}

func TestListPersonsOrderedByID(t *testing.T) {
	persons, _, _ := newServices(t)
	ctx := context.Background()

	var ids []uint
	for _, name := range []string{"Cleo", "Ann", "Bo"} {
		in := annInput()
		in.Name = name
		p, err := persons.CreatePerson(ctx, in)
		require.NoError(t, err)
		ids = append(ids, p.ID)
	}

	all, err := persons.ListPersons(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, p := range all {
		assert.Equal(t, ids[i], p.ID)
		assert.NotNil(t, p.Resources)
	}
}

func TestUpdatePersonReplacesEveryField(t *testing.T) {
	persons, resources, _ := newServices(t)
	ctx := context.Background()

	in := annInput()
	in.Gender = ptr("female")
	in.ContactNumber = ptr("555-0100")
	in.EmergencyContactName = ptr("Bob")
	in.EmergencyContactNumber = ptr("555-0199")
	in.Address = ptr("1 Old Road")
	in.MedicalConditions = []string{"asthma"}
	p, err := persons.CreatePerson(ctx, in)
	require.NoError(t, err)
	_, err = resources.CreateResource(ctx, p.ID, dto.ResourceInput{Name: "Wheelchair"})
	require.NoError(t, err)

	replacement := dto.PersonInput{
		Name:               "Ann Smith",
		Age:                ptr(35),
		DisabilityType:     "visual",
		DisabilitySeverity: "severe",
		Address:            ptr("2 New Road"),
		MedicalConditions:  []string{"diabetes", "glaucoma"},
	}
	updated, err := persons.UpdatePerson(ctx, p.ID, replacement)
	require.NoError(t, err)

	got, err := persons.GetPerson(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	assert.Equal(t, p.ID, got.ID)
	assert.Equal(t, "Ann Smith", got.Name)
	assert.Equal(t, 35, got.Age)
	assert.Equal(t, "visual", got.DisabilityType)
	assert.Equal(t, "severe", got.DisabilitySeverity)
	assert.Nil(t, got.Gender, "omitted optional fields are cleared")
	assert.Nil(t, got.ContactNumber)
	assert.Nil(t, got.EmergencyContactName)
	assert.Nil(t, got.EmergencyContactNumber)
	require.NotNil(t, got.Address)
	assert.Equal(t, "2 New Road", *got.Address)
	assert.Equal(t, []string{"diabetes", "glaucoma"}, got.MedicalConditions)

	require.Len(t, got.Resources, 1, "update must not touch resources")
	assert.Equal(t, "Wheelchair", got.Resources[0].Name)
}

func TestUpdatePersonClearsConditions(t *testing.T) {
	persons, _, db := newServices(t)
	ctx := context.Background()

	in := annInput()
	in.MedicalConditions = []string{"asthma"}
	p, err := persons.CreatePerson(ctx, in)
	require.NoError(t, err)

	_, err = persons.UpdatePerson(ctx, p.ID, annInput())
	require.NoError(t, err)

	var row model.PersonModel
	require.NoError(t, db.First(&row, "id = ?", p.ID).Error)
	assert.Nil(t, row.MedicalConditions)
}

func TestUpdatePersonNotFound(t *testing.T) {
	persons, _, _ := newServices(t)

	_, err := persons.UpdatePerson(context.Background(), 7, annInput())
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestUpdatePersonValidationLeavesRecord(t *testing.T) {
	persons, _, _ := newServices(t)
	ctx := context.Background()

	p, err := persons.CreatePerson(ctx, annInput())
	require.NoError(t, err)

	bad := annInput()
	bad.Name = ""
	_, err = persons.UpdatePerson(ctx, p.ID, bad)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)

	got, err := persons.GetPerson(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
}

func TestDeletePersonIsFinal(t *testing.T) {
	persons, _, _ := newServices(t)
	ctx := context.Background()

	p, err := persons.CreatePerson(ctx, annInput())
	require.NoError(t, err)

	require.NoError(t, persons.DeletePerson(ctx, p.ID))

	_, err = persons.GetPerson(ctx, p.ID)
	assert.ErrorIs(t, err, ErrPersonNotFound)

	assert.ErrorIs(t, persons.DeletePerson(ctx, p.ID), ErrPersonNotFound)
}

func TestDeletePersonCascadesResources(t *testing.T) {
	persons, resources, db := newServices(t)
	ctx := context.Background()

	p, err := persons.CreatePerson(ctx, annInput())
	require.NoError(t, err)
	other, err := persons.CreatePerson(ctx, annInput())
	require.NoError(t, err)

	r1, err := resources.CreateResource(ctx, p.ID, dto.ResourceInput{Name: "Wheelchair"})
	require.NoError(t, err)
	_, err = resources.CreateResource(ctx, p.ID, dto.ResourceInput{Name: "Ramp"})
	require.NoError(t, err)
	kept, err := resources.CreateResource(ctx, other.ID, dto.ResourceInput{Name: "Cane"})
	require.NoError(t, err)

	require.NoError(t, persons.DeletePerson(ctx, p.ID))

	var orphans int64
	require.NoError(t, db.Model(&model.ResourceModel{}).Where("person_id = ?", p.ID).Count(&orphans).Error)
	assert.Zero(t, orphans)

	_, err = resources.UpdateResource(ctx, r1.ID, dto.ResourceInput{Name: "X"})
	assert.ErrorIs(t, err, ErrResourceNotFound)

	left, err := resources.ListResourcesForPerson(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, kept.ID, left[0].ID)
}

func TestSchemaRejectsOrphanResource(t *testing.T) {
	db := newTestDB(t)

	err := db.Create(&model.ResourceModel{Name: "Ghost", PersonID: 999}).Error
	require.Error(t, err)
	assert.True(t, database.IsForeignKeyViolation(err))
}

func TestCorruptConditionsSurface(t *testing.T) {
	persons, _, db := newServices(t)
	ctx := context.Background()

	p, err := persons.CreatePerson(ctx, annInput())
	require.NoError(t, err)
	require.NoError(t, db.Exec("UPDATE persons SET medical_conditions = ? WHERE id = ?", "{not json", p.ID).Error)

	_, err = persons.GetPerson(ctx, p.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, jsonlist.ErrDataCorruption)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = persons.ListPersons(ctx)
	assert.ErrorIs(t, err, jsonlist.ErrDataCorruption)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"name": "is required", "age": "is required"}}
	assert.Equal(t, "validation failed: age: is required, name: is required", err.Error())
}

func TestCreatePersonRejectsInvalidUTF8(t *testing.T) {
	cases := map[string]struct {
		mutate func(*dto.PersonInput)
		field  string
	}{
		"condition": {func(in *dto.PersonInput) { in.MedicalConditions = []string{"ok", "a\xffb"} }, "medical_conditions[1]"},
		"address":   {func(in *dto.PersonInput) { in.Address = ptr("bad \xfe road") }, "address"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			persons, _, _ := newServices(t)
			in := annInput()
			tc.mutate(&in)

			_, err := persons.CreatePerson(context.Background(), in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "must be valid UTF-8 text", ve.Fields[tc.field])

			all, err := persons.ListPersons(context.Background())
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}
