package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/calendar-engine/api"
	"github.com/warp/calendar-engine/calendar"
)

// =============================================================================
// FAKE ZONE STORE
// =============================================================================

// memZones is an in-memory ZoneStore for handler tests.
type memZones struct {
	zones map[string]calendar.TimeZoneOffset
}

var _ api.ZoneStore = (*memZones)(nil)

func newMemZones() *memZones {
	return &memZones{zones: map[string]calendar.TimeZoneOffset{
		"EST": {Name: "EST", Hours: -5},
		"NPT": {Name: "NPT", Hours: 5, Minutes: 45},
	}}
}

func (m *memZones) Put(_ context.Context, zone calendar.TimeZoneOffset) error {
	m.zones[zone.Name] = zone
	return nil
}

func (m *memZones) Get(_ context.Context, name string) (calendar.TimeZoneOffset, error) {
	z, ok := m.zones[name]
	if !ok {
		return calendar.TimeZoneOffset{}, fmt.Errorf("%w: %s", api.ErrZoneNotFound, name)
	}
	return z, nil
}

func (m *memZones) List(_ context.Context) ([]calendar.TimeZoneOffset, error) {
	out := make([]calendar.TimeZoneOffset, 0, len(m.zones))
	for _, z := range m.zones {
		out = append(out, z)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memZones) Delete(_ context.Context, name string) error {
	if _, ok := m.zones[name]; !ok {
		return fmt.Errorf("%w: %s", api.ErrZoneNotFound, name)
	}
	delete(m.zones, name)
	return nil
}

// =============================================================================
// HARNESS
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.NewRouter(api.NewHandler(newMemZones())))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(buf))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// =============================================================================
// CALENDARS
// =============================================================================

func TestListCalendars(t *testing.T) {
	srv := newTestServer(t)

	var out []api.CalendarDTO
	resp := getJSON(t, srv.URL+"/api/calendars", &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	byName := map[string]api.CalendarDTO{}
	for _, c := range out {
		byName[c.Name] = c
	}
	require.Contains(t, byName, "gregorian")
	require.Contains(t, byName, "hebrew")
	require.Contains(t, byName, "unix-millis")
	assert.True(t, byName["hebrew"].Approximate)
	assert.True(t, byName["unix-seconds"].Times)
	assert.False(t, byName["gregorian"].Times)
}

// =============================================================================
// CONVERSION
// =============================================================================

func TestConvertGregorianToHebrew(t *testing.T) {
	srv := newTestServer(t)

	var out api.ConvertResponse
	resp := postJSON(t, srv.URL+"/api/convert", api.ConvertRequest{
		From: api.DateDTO{Calendar: "gregorian", Year: 2024, Month: 4, Day: 23},
		To:   "hebrew",
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "hebrew", out.Result.Calendar)
	assert.Equal(t, 5784, out.Result.Year)
	assert.Equal(t, 1, out.Result.Month) // Nisan
	assert.Equal(t, 15, out.Result.Day)
	assert.Equal(t, int32(738_999), out.PivotDay)
	assert.Equal(t, "Tuesday", out.Weekday)
	assert.Equal(t, "Tuesday, 15 Nisan 5784", out.Formatted)
}

func TestConvertWithFraction(t *testing.T) {
	srv := newTestServer(t)

	var out api.ConvertResponse
	resp := postJSON(t, srv.URL+"/api/convert", api.ConvertRequest{
		From: api.DateDTO{
			Calendar: "gregorian", Year: 2024, Month: 2, Day: 28,
			Time: &api.TimeDTO{Fraction: "0.5"},
		},
		To: "unix-seconds",
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, out.Result.Seconds)
	assert.Equal(t, int64(1_709_121_600), *out.Result.Seconds) // 2024-02-28T12:00:00Z
}

func TestConvertZonedSourceNormalizesToUTC(t *testing.T) {
	srv := newTestServer(t)

	// 01:30 at +03:00 is 22:30 UTC of the previous day.
	var out api.ConvertResponse
	resp := postJSON(t, srv.URL+"/api/convert", api.ConvertRequest{
		From: api.DateDTO{
			Calendar: "gregorian", Year: 2024, Month: 1, Day: 1,
			Time: &api.TimeDTO{Hour: 1, Minute: 30},
			Zone: &api.ZoneDTO{Hours: 3},
		},
		To: "gregorian",
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 2023, out.Result.Year)
	assert.Equal(t, 12, out.Result.Month)
	assert.Equal(t, 31, out.Result.Day)
	require.NotNil(t, out.Result.Time)
	assert.Equal(t, 22, out.Result.Time.Hour)
	assert.Equal(t, 30, out.Result.Time.Minute)
}

func TestConvertWithNamedTargetZone(t *testing.T) {
	srv := newTestServer(t)

	// Midnight UTC re-expressed in EST (-5) rolls back a day.
	var out api.ConvertResponse
	resp := postJSON(t, srv.URL+"/api/convert", api.ConvertRequest{
		From:       api.DateDTO{Calendar: "gregorian", Year: 2024, Month: 3, Day: 1},
		To:         "gregorian",
		TargetZone: &api.ZoneDTO{Name: "EST"},
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 2, out.Result.Month)
	assert.Equal(t, 29, out.Result.Day)
	require.NotNil(t, out.Result.Time)
	assert.Equal(t, 19, out.Result.Time.Hour)
	require.NotNil(t, out.Result.Zone)
	assert.Equal(t, "EST", out.Result.Zone.Name)
}

func TestConvertUnknownCalendar(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/convert", api.ConvertRequest{
		From: api.DateDTO{Calendar: "mayan", Year: 1, Month: 1, Day: 1},
		To:   "gregorian",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConvertInvalidDate(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/convert", api.ConvertRequest{
		From: api.DateDTO{Calendar: "gregorian", Year: 2023, Month: 2, Day: 29},
		To:   "julian",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body["error"], "day")
}

// =============================================================================
// ARITHMETIC
// =============================================================================

func TestArithmeticAddDays(t *testing.T) {
	srv := newTestServer(t)

	var out api.ArithmeticResponse
	resp := postJSON(t, srv.URL+"/api/arithmetic", api.ArithmeticRequest{
		Date: api.DateDTO{Calendar: "gregorian", Year: 2024, Month: 2, Day: 28},
		Op:   "add_days",
		N:    2,
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, out.Result)
	assert.Equal(t, 3, out.Result.Result.Month)
	assert.Equal(t, 1, out.Result.Result.Day)
}

func TestArithmeticDiff(t *testing.T) {
	srv := newTestServer(t)

	var out api.ArithmeticResponse
	resp := postJSON(t, srv.URL+"/api/arithmetic", api.ArithmeticRequest{
		Date:  api.DateDTO{Calendar: "gregorian", Year: 2024, Month: 1, Day: 1},
		Op:    "diff",
		Other: &api.DateDTO{Calendar: "hebrew", Year: 5785, Month: 7, Day: 1},
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// 2024-01-01 to Rosh Hashanah 5785 (2024-10-03).
	require.NotNil(t, out.Days)
	assert.Equal(t, 276, *out.Days)
}

func TestArithmeticWeekday(t *testing.T) {
	srv := newTestServer(t)

	var out api.ArithmeticResponse
	resp := postJSON(t, srv.URL+"/api/arithmetic", api.ArithmeticRequest{
		Date: api.DateDTO{Calendar: "gregorian", Year: 2024, Month: 1, Day: 1},
		Op:   "weekday",
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Monday", out.Weekday)
}

func TestArithmeticNthWeekday(t *testing.T) {
	srv := newTestServer(t)

	var out api.ArithmeticResponse
	resp := postJSON(t, srv.URL+"/api/arithmetic", api.ArithmeticRequest{
		Date:    api.DateDTO{Calendar: "gregorian", Year: 2024, Month: 1, Day: 1},
		Op:      "nth_weekday",
		N:       1,
		Weekday: "thursday",
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, out.Result)
	assert.Equal(t, int32(738_889), out.Result.PivotDay)
	assert.Equal(t, 4, out.Result.Result.Day)
}

func TestArithmeticUnknownOp(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/arithmetic", api.ArithmeticRequest{
		Date: api.DateDTO{Calendar: "gregorian", Year: 2024, Month: 1, Day: 1},
		Op:   "multiply",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// =============================================================================
// TIMEZONE SHIFT
// =============================================================================

func TestShiftTimezoneRollsBackward(t *testing.T) {
	srv := newTestServer(t)

	var out api.ConvertResponse
	resp := postJSON(t, srv.URL+"/api/timezones/shift", api.ShiftRequest{
		From: api.DateDTO{
			Calendar: "gregorian", Year: 2024, Month: 2, Day: 1,
			Time: &api.TimeDTO{Hour: 2, Minute: 30, Second: 24},
		},
		Target: api.ZoneDTO{Hours: -7, Minutes: 10, Seconds: 4},
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 1, out.Result.Month)
	assert.Equal(t, 31, out.Result.Day)
	require.NotNil(t, out.Result.Time)
	assert.Equal(t, 19, out.Result.Time.Hour)
	assert.Equal(t, 20, out.Result.Time.Minute)
	assert.Equal(t, 20, out.Result.Time.Second)
}

func TestShiftTimezoneNamedTarget(t *testing.T) {
	srv := newTestServer(t)

	var out api.ConvertResponse
	resp := postJSON(t, srv.URL+"/api/timezones/shift", api.ShiftRequest{
		From: api.DateDTO{
			Calendar: "gregorian", Year: 2024, Month: 12, Day: 31,
			Time: &api.TimeDTO{Hour: 20},
		},
		Target: api.ZoneDTO{Name: "NPT"},
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, 2025, out.Result.Year)
	assert.Equal(t, 1, out.Result.Month)
	assert.Equal(t, 1, out.Result.Day)
	assert.Equal(t, 1, out.Result.Time.Hour)
	assert.Equal(t, 45, out.Result.Time.Minute)
}

func TestShiftTimezoneUnknownName(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/timezones/shift", api.ShiftRequest{
		From:   api.DateDTO{Calendar: "gregorian", Year: 2024, Month: 1, Day: 1},
		Target: api.ZoneDTO{Name: "PST8PDT"},
	}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// ZONE REGISTRY
// =============================================================================

func TestZoneCRUD(t *testing.T) {
	srv := newTestServer(t)

	var created api.ZoneDTO
	resp := postJSON(t, srv.URL+"/api/zones/", api.ZoneDTO{Name: "ACST", Hours: 9, Minutes: 30}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ACST", created.Name)

	var got api.ZoneDTO
	resp = getJSON(t, srv.URL+"/api/zones/ACST", &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 9, got.Hours)
	assert.Equal(t, 30, got.Minutes)

	var list []api.ZoneDTO
	resp = getJSON(t, srv.URL+"/api/zones/", &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 3) // two seeds plus ACST

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/zones/ACST", nil)
	require.NoError(t, err)
	del, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	del.Body.Close()
	assert.Equal(t, http.StatusNoContent, del.StatusCode)

	resp = getJSON(t, srv.URL+"/api/zones/ACST", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPutZoneValidation(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/zones/", api.ZoneDTO{Name: "BAD", Hours: 15}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/api/zones/", api.ZoneDTO{Hours: 1}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteZoneNotFound(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/api/zones/NOPE", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
