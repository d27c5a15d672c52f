package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"unicode"

	"goldenbay/models"
)

// CheckAvailability returns the availability snapshot for a date+session,
// ordered by room name. Malformed records are rejected rather than passed
// through to wizard state.
func (c *Client) CheckAvailability(ctx context.Context, date string, session models.ServiceSession) ([]models.DiningArea, error) {
	if !session.Valid() {
		return nil, fmt.Errorf("unknown service session %q", session)
	}
	query := url.Values{}
	query.Set("date", date)
	query.Set("session", string(session))

	var areas []models.DiningArea
	if err := c.doJSON(ctx, http.MethodGet, "/api/reservations/check/", query, nil, &areas); err != nil {
		return nil, err
	}
	for _, area := range areas {
		if err := area.Validate(); err != nil {
			return nil, fmt.Errorf("rejecting availability response: %w", err)
		}
	}
	sort.SliceStable(areas, func(i, j int) bool {
		return naturalLess(areas[i].Name, areas[j].Name)
	})
	return areas, nil
}

// CreateReservation submits a booking. Anonymous for customer self-service;
// a token-bound client makes it a privileged manual entry.
func (c *Client) CreateReservation(ctx context.Context, payload models.ReservationPayload) error {
	return c.doJSON(ctx, http.MethodPost, "/api/reservations/create/", nil, payload, nil)
}

// ListReservations returns all bookings for the staff booking manager.
func (c *Client) ListReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := c.doJSON(ctx, http.MethodGet, "/api/reservations/manage/", nil, nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// UpdateReservation patches an existing booking (status or details).
func (c *Client) UpdateReservation(ctx context.Context, id int, patch models.ReservationPatch) (models.Reservation, error) {
	var updated models.Reservation
	path := fmt.Sprintf("/api/reservations/manage/%d/", id)
	if err := c.doJSON(ctx, http.MethodPatch, path, nil, patch, &updated); err != nil {
		return models.Reservation{}, err
	}
	return updated, nil
}

// Dashboard returns the aggregate stats, chart series and recent bookings.
func (c *Client) Dashboard(ctx context.Context) (models.Dashboard, error) {
	var dashboard models.Dashboard
	if err := c.doJSON(ctx, http.MethodGet, "/api/reservations/dashboard/", nil, nil, &dashboard); err != nil {
		return models.Dashboard{}, err
	}
	return dashboard, nil
}

// ListVIPRooms returns the active VIP rooms for the private-rooms page.
func (c *Client) ListVIPRooms(ctx context.Context) ([]models.DiningArea, error) {
	var rooms []models.DiningArea
	if err := c.doJSON(ctx, http.MethodGet, "/api/reservations/rooms/", nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// naturalLess orders strings with embedded numbers numerically, so
// "VIP Room 2" sorts before "VIP Room 10".
func naturalLess(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		if unicode.IsDigit(ra[i]) && unicode.IsDigit(rb[j]) {
			si := i
			for i < len(ra) && unicode.IsDigit(ra[i]) {
				i++
			}
			sj := j
			for j < len(rb) && unicode.IsDigit(rb[j]) {
				j++
			}
			na, _ := strconv.Atoi(string(ra[si:i]))
			nb, _ := strconv.Atoi(string(rb[sj:j]))
			if na != nb {
				return na < nb
			}
			continue
		}
		la, lb := unicode.ToLower(ra[i]), unicode.ToLower(rb[j])
		if la != lb {
			return la < lb
		}
		i++
		j++
	}
	return len(ra)-i < len(rb)-j
}
