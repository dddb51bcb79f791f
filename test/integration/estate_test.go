//go:build integration

package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-ledger/internal/model"
)

func day(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format(model.DateLayout)
}

func (s *testServer) createPerson(t *testing.T, name string) string {
	t.Helper()
	status, env := s.do(t, http.MethodPost, "/api/v1/persons", map[string]any{"name": name, "age": 40})
	require.Equal(t, http.StatusCreated, status)
	return decodeData[model.Person](t, env).ID
}

func (s *testServer) createHouse(t *testing.T) string {
	t.Helper()
	status, env := s.do(t, http.MethodPost, "/api/v1/houses", map[string]any{
		"post_number": "04524",
		"address":     "Sejong-daero 110",
		"category":    "Apartment",
	})
	require.Equal(t, http.StatusCreated, status)
	return decodeData[model.House](t, env).ID
}

func (s *testServer) createOwnership(t *testing.T, owner string, house string, category string, started string, ended any) model.Ownership {
	t.Helper()
	status, env := s.do(t, http.MethodPost, "/api/v1/ownerships", map[string]any{
		"owner_id": owner,
		"house_id": house,
		"category": category,
		"amount":   1000,
		"started":  started,
		"ended":    ended,
	})
	require.Equal(t, http.StatusCreated, status, env.Error)
	return decodeData[model.Ownership](t, env)
}

func (s *testServer) getHouse(t *testing.T, id string) model.House {
	t.Helper()
	status, env := s.do(t, http.MethodGet, "/api/v1/houses/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	return decodeData[model.House](t, env)
}

func TestHouseCurrentOwnerAndTenant(t *testing.T) {
	s := newTestServer(t)

	owner := s.createPerson(t, "Kim")
	tenant := s.createPerson(t, "Lee")
	former := s.createPerson(t, "Park")
	house := s.createHouse(t)

	empty := s.getHouse(t, house)
	assert.Nil(t, empty.CurrentOwner)
	assert.Nil(t, empty.CurrentTenant)

	s.createOwnership(t, owner, house, "Buy", day(-400), nil)
	s.createOwnership(t, former, house, "ShortTerm", day(-100), day(-10))
	s.createOwnership(t, tenant, house, "LongTerm", day(-5), day(300))

	got := s.getHouse(t, house)
	require.NotNil(t, got.CurrentOwner)
	require.NotNil(t, got.CurrentTenant)
	assert.Equal(t, "Kim", *got.CurrentOwner)
	assert.Equal(t, "Lee", *got.CurrentTenant)
}

func TestExpireTenancyClearsCurrentTenant(t *testing.T) {
	s := newTestServer(t)

	tenant := s.createPerson(t, "Lee")
	house := s.createHouse(t)
	lease := s.createOwnership(t, tenant, house, "LongTerm", day(-30), day(300))

	status, env := s.do(t, http.MethodPost, "/api/v1/houses/expire-tenancy", map[string]any{"house_ids": []string{house}})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), decodeData[model.BulkResult](t, env).Affected)

	assert.Nil(t, s.getHouse(t, house).CurrentTenant)

	_, env = s.do(t, http.MethodGet, "/api/v1/ownerships/"+lease.ID, nil)
	expired := decodeData[model.Ownership](t, env)
	require.NotNil(t, expired.Ended)
	assert.Equal(t, day(0), expired.Ended.String())

	status, env = s.do(t, http.MethodPost, "/api/v1/houses/"+house+"/expire-tenancy", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(0), decodeData[model.BulkResult](t, env).Affected)
}

func TestExtendLease(t *testing.T) {
	s := newTestServer(t)

	person := s.createPerson(t, "Choi")
	house := s.createHouse(t)
	lease := s.createOwnership(t, person, house, "ShortTerm", day(-10), day(20))
	purchase := s.createOwnership(t, person, house, "Buy", day(-10), nil)

	status, env := s.do(t, http.MethodPost, "/api/v1/ownerships/"+lease.ID+"/extend", map[string]any{"ended": day(60)})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, day(60), decodeData[model.Ownership](t, env).Ended.String())

	status, _ = s.do(t, http.MethodPost, "/api/v1/ownerships/"+lease.ID+"/extend", map[string]any{"ended": day(30)})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(t, http.MethodPost, "/api/v1/ownerships/"+purchase.ID+"/extend", map[string]any{"ended": day(60)})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDeleteReferencedPersonIsConflict(t *testing.T) {
	s := newTestServer(t)

	person := s.createPerson(t, "Jung")
	house := s.createHouse(t)
	contract := s.createOwnership(t, person, house, "Buy", day(-1), nil)

	status, env := s.do(t, http.MethodDelete, "/api/v1/persons/"+person, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	status, _ = s.do(t, http.MethodDelete, "/api/v1/ownerships/"+contract.ID, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, http.MethodDelete, "/api/v1/persons/"+person, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestOwnershipRejectsUnknownReferences(t *testing.T) {
	s := newTestServer(t)

	house := s.createHouse(t)
	status, env := s.do(t, http.MethodPost, "/api/v1/ownerships", map[string]any{
		"owner_id": "5d1f6a2b-3c4d-4e5f-8a9b-0c1d2e3f4a5b",
		"house_id": house,
		"category": "Buy",
		"amount":   10,
		"started":  day(0),
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}
