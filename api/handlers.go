/*
handlers.go - HTTP handlers for the calendar engine

PURPOSE:
  Implements the API endpoints over the pure engine: listing adapters,
  cross-calendar conversion, date arithmetic, timezone shifting, and the
  named-offset zone registry.

DISPATCH:
  Calendar adapters are generic types; HTTP payloads are dynamic. The
  switches in parseSource/renderTarget are the bridge: they reduce any
  payload to (pivot day, nano of day, zone) and rebuild any target from
  it, mirroring the engine's three-tier conversion exactly.

SEE ALSO:
  - dto.go: request/response shapes
  - server.go: routing
  - store/sqlite: the zone registry implementation
*/
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/warp/calendar-engine/calendar"
	"github.com/warp/calendar-engine/format"
	"github.com/warp/calendar-engine/gregorian"
	"github.com/warp/calendar-engine/hebrew"
	"github.com/warp/calendar-engine/isoweek"
	"github.com/warp/calendar-engine/julian"
	"github.com/warp/calendar-engine/unixtime"
)

// =============================================================================
// ZONE STORE - consumer-defined persistence interface
// =============================================================================

// ErrZoneNotFound is returned when a named offset is not in the registry.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneStore persists named fixed UTC offsets. Implemented by store/sqlite.
type ZoneStore interface {
	Put(ctx context.Context, zone calendar.TimeZoneOffset) error
	Get(ctx context.Context, name string) (calendar.TimeZoneOffset, error)
	List(ctx context.Context) ([]calendar.TimeZoneOffset, error)
	Delete(ctx context.Context, name string) error
}

// Handler serves the calendar API.
type Handler struct {
	zones ZoneStore
}

// NewHandler creates an API handler backed by the given zone registry.
func NewHandler(zones ZoneStore) *Handler {
	return &Handler{zones: zones}
}

// =============================================================================
// CALENDARS
// =============================================================================

// ListCalendars returns the registered adapters and their capabilities.
func (h *Handler) ListCalendars(w http.ResponseWriter, r *http.Request) {
	var out []CalendarDTO
	for _, s := range calendar.Systems() {
		out = append(out, CalendarDTO{
			Name:        s.Name,
			Dates:       s.Caps.Dates,
			Times:       s.Caps.Times,
			Zones:       s.Caps.Zones,
			Approximate: s.Approximate,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

// =============================================================================
// CONVERSION
// =============================================================================

// Convert converts a value to another calendar. Zone information on the
// source is normalized to UTC before any tier is dropped; a target zone
// re-expresses the result afterward.
func (h *Handler) Convert(w http.ResponseWriter, r *http.Request) {
	var req ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	day, nano, zone, err := h.parseSource(r.Context(), req.From)
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}

	// Never drop a zone silently: normalize to UTC first.
	if zone != nil && !zone.IsUTC() {
		day, nano = shiftPivot(day, nano, -zone.Nanoseconds())
	}
	outZone := calendar.UTC
	hadZone := zone != nil

	if req.TargetZone != nil {
		target, err := h.offset(r.Context(), req.TargetZone)
		if err != nil {
			respondError(w, statusFor(err), err)
			return
		}
		day, nano = shiftPivot(day, nano, target.Nanoseconds())
		outZone = target
		hadZone = true
	}

	resp, err := renderTarget(req.To, day, nano, hadZone, outZone)
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// =============================================================================
// ARITHMETIC
// =============================================================================

// Arithmetic performs day arithmetic and weekday search on a value.
func (h *Handler) Arithmetic(w http.ResponseWriter, r *http.Request) {
	var req ArithmeticRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	day, nano, _, err := h.parseSource(r.Context(), req.Date)
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}

	switch req.Op {
	case "add_days", "sub_days":
		n := req.N
		if req.Op == "sub_days" {
			n = -n
		}
		resp, err := renderTarget(req.Date.Calendar, day.AddDays(n), nano, false, calendar.UTC)
		if err != nil {
			respondError(w, statusFor(err), err)
			return
		}
		respondJSON(w, http.StatusOK, ArithmeticResponse{Result: resp})

	case "diff":
		if req.Other == nil {
			respondError(w, http.StatusBadRequest, errors.New("diff requires other"))
			return
		}
		otherDay, _, _, err := h.parseSource(r.Context(), *req.Other)
		if err != nil {
			respondError(w, statusFor(err), err)
			return
		}
		days := otherDay.Sub(day)
		respondJSON(w, http.StatusOK, ArithmeticResponse{Days: &days})

	case "weekday":
		respondJSON(w, http.StatusOK, ArithmeticResponse{Weekday: day.Weekday().String()})

	case "nth_weekday":
		k, err := parseWeekday(req.Weekday)
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		resp, err := renderTarget(req.Date.Calendar, day.NthWeekday(req.N, k), 0, false, calendar.UTC)
		if err != nil {
			respondError(w, statusFor(err), err)
			return
		}
		respondJSON(w, http.StatusOK, ArithmeticResponse{Result: resp})

	default:
		respondError(w, http.StatusBadRequest, errors.New("unknown op "+req.Op))
	}
}

// =============================================================================
// TIMEZONE SHIFT
// =============================================================================

// ShiftTimezone re-expresses a zoned value in another fixed offset,
// rolling the date across midnight as needed.
func (h *Handler) ShiftTimezone(w http.ResponseWriter, r *http.Request) {
	var req ShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	day, nano, zone, err := h.parseSource(r.Context(), req.From)
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	source := calendar.UTC
	if zone != nil {
		source = *zone
	}
	target, err := h.offset(r.Context(), &req.Target)
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}

	day, nano = shiftPivot(day, nano, target.Nanoseconds()-source.Nanoseconds())
	resp, err := renderTarget(req.From.Calendar, day, nano, true, target)
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

// =============================================================================
// ZONE REGISTRY
// =============================================================================

func (h *Handler) ListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.zones.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	out := make([]*ZoneDTO, 0, len(zones))
	for _, z := range zones {
		out = append(out, zoneDTO(z))
	}
	respondJSON(w, http.StatusOK, out)
}

func (h *Handler) GetZone(w http.ResponseWriter, r *http.Request) {
	zone, err := h.zones.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	respondJSON(w, http.StatusOK, zoneDTO(zone))
}

func (h *Handler) PutZone(w http.ResponseWriter, r *http.Request) {
	var dto ZoneDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if dto.Name == "" {
		respondError(w, http.StatusBadRequest, errors.New("zone name required"))
		return
	}
	zone, err := calendar.NewTimeZoneOffset(dto.Hours, dto.Minutes, dto.Seconds, dto.Name)
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.zones.Put(r.Context(), zone); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respondJSON(w, http.StatusCreated, zoneDTO(zone))
}

func (h *Handler) DeleteZone(w http.ResponseWriter, r *http.Request) {
	if err := h.zones.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		respondError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// SOURCE PARSING AND TARGET RENDERING
// =============================================================================

// parseSource reduces a DateDTO to the richest tier it carries: pivot day,
// nano of day, and (when present) its zone.
func (h *Handler) parseSource(ctx context.Context, dto DateDTO) (calendar.FixedDay, calendar.NanoOfDay, *calendar.TimeZoneOffset, error) {
	var (
		day  calendar.FixedDay
		nano calendar.NanoOfDay
		err  error
	)

	switch dto.Calendar {
	case "gregorian":
		var d gregorian.Date
		if d, err = gregorian.New(calendar.AstronomicalYear(dto.Year), dto.Month, dto.Day); err == nil {
			day = d.Fixed()
		}
	case "julian":
		var d julian.Date
		if d, err = julian.New(calendar.AnnoDominiYear(dto.Year), dto.Month, dto.Day); err == nil {
			day = d.Fixed()
		}
	case "iso":
		var d isoweek.Date
		if d, err = isoweek.New(calendar.AstronomicalYear(dto.Year), dto.Week, dto.Day); err == nil {
			day = d.Fixed()
		}
	case "hebrew":
		var d hebrew.Date
		if d, err = hebrew.New(calendar.AstronomicalYear(dto.Year), dto.Month, dto.Day); err == nil {
			day = d.Fixed()
		}
	case "unix-seconds":
		if dto.Seconds == nil {
			return 0, 0, nil, errors.New("unix-seconds requires seconds")
		}
		day, nano = unixtime.NewSeconds(*dto.Seconds).FixedDateTime()
	case "unix-millis":
		if dto.Millis == nil {
			return 0, 0, nil, errors.New("unix-millis requires millis")
		}
		day, nano = unixtime.NewMillis(*dto.Millis).FixedDateTime()
	default:
		return 0, 0, nil, errors.New("unknown calendar " + dto.Calendar)
	}
	if err != nil {
		return 0, 0, nil, err
	}

	if dto.Time != nil {
		if nano, err = dto.Time.nanoOfDay(); err != nil {
			return 0, 0, nil, err
		}
	}
	if dto.Zone != nil {
		zone, err := h.offset(ctx, dto.Zone)
		if err != nil {
			return 0, 0, nil, err
		}
		return day, nano, &zone, nil
	}
	return day, nano, nil, nil
}

// renderTarget rebuilds a target-calendar value from a pivot day and nano
// of day, attaching derived fields for display.
func renderTarget(name string, day calendar.FixedDay, nano calendar.NanoOfDay, zoned bool, zone calendar.TimeZoneOffset) (*ConvertResponse, error) {
	resp := &ConvertResponse{PivotDay: int32(day), Weekday: day.Weekday().String()}
	dto := DateDTO{Calendar: name}

	var fielded calendar.Fielded
	switch name {
	case "gregorian":
		var probe gregorian.Date
		d := probe.FromFixed(day)
		dto.Year, dto.Month, dto.Day = int(d.Year()), d.Month(), d.Day()
		fielded = d
	case "julian":
		var probe julian.Date
		d := probe.FromFixed(day)
		dto.Year, dto.Month, dto.Day = int(d.Year()), d.Month(), d.Day()
		fielded = d
	case "iso":
		var probe isoweek.Date
		d := probe.FromFixed(day)
		dto.Year, dto.Week, dto.Day = int(d.Year()), d.Week(), d.Day()
		fielded = d
	case "hebrew":
		var probe hebrew.Date
		d := probe.FromFixed(day)
		dto.Year, dto.Month, dto.Day = int(d.Year()), d.Month(), d.Day()
		fielded = d
	case "unix-seconds":
		v := unixtime.FromFixedDateTime(day, nano).Unix()
		dto.Seconds = &v
	case "unix-millis":
		v := unixtime.FromFixedDateTimeMillis(day, nano).UnixMilli()
		dto.Millis = &v
	default:
		return nil, errors.New("unknown calendar " + name)
	}

	if fielded != nil {
		resp.DayOfYear = fielded.DayOfYear()
		resp.Week = fielded.WeekOfYear()
		resp.Quarter = fielded.Quarter()
		resp.Formatted = format.Long(fielded)
		if nano != 0 || zoned {
			dto.Time = timeDTO(nano)
		}
		if zoned {
			dto.Zone = zoneDTO(zone)
		}
	}

	resp.Result = dto
	return resp, nil
}

// shiftPivot adds a signed nanosecond delta to a (day, nano) clock
// reading, borrowing or carrying one day on wrap.
func shiftPivot(day calendar.FixedDay, nano calendar.NanoOfDay, delta int64) (calendar.FixedDay, calendar.NanoOfDay) {
	n := int64(nano) + delta
	switch {
	case n < 0:
		return day.AddDays(-1), calendar.NanoOfDay(n + calendar.NanosPerDay)
	case n >= calendar.NanosPerDay:
		return day.AddDays(1), calendar.NanoOfDay(n - calendar.NanosPerDay)
	default:
		return day, calendar.NanoOfDay(n)
	}
}

// offset resolves a ZoneDTO, consulting the registry when only a name is
// given.
func (h *Handler) offset(ctx context.Context, z *ZoneDTO) (calendar.TimeZoneOffset, error) {
	if z == nil {
		return calendar.UTC, nil
	}
	if z.Name != "" && z.Hours == 0 && z.Minutes == 0 && z.Seconds == 0 {
		if strings.EqualFold(z.Name, "UTC") {
			return calendar.UTC, nil
		}
		return h.zones.Get(ctx, z.Name)
	}
	return calendar.NewTimeZoneOffset(z.Hours, z.Minutes, z.Seconds, z.Name)
}

// =============================================================================
// HELPERS
// =============================================================================

func parseWeekday(name string) (calendar.DayOfWeek, error) {
	for i := calendar.Sunday; i <= calendar.Saturday; i++ {
		if strings.EqualFold(name, i.String()) {
			return i, nil
		}
	}
	return 0, errors.New("unknown weekday " + name)
}

func statusFor(err error) int {
	if errors.Is(err, ErrZoneNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, err error) {
	respondJSON(w, status, map[string]string{"error": err.Error()})
}
