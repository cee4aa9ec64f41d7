package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/mmynk/contactbook/internal/apperr"
	"github.com/mmynk/contactbook/internal/service"
)

// birthDateLayouts are tried in order when decoding a birth date.
var birthDateLayouts = []string{time.DateOnly, time.RFC3339, time.RFC3339Nano}

// date is a nullable calendar date accepting "2006-01-02" or a full RFC 3339
// timestamp. An empty string decodes as null.
type date struct {
	t *time.Time
}

func (d *date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		d.t = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return apperr.Validation("birth date must be a string")
	}
	s = strings.TrimSpace(s)
	if s == "" {
		d.t = nil
		return nil
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.t = &t
			return nil
		}
	}
	return apperr.Validation("birth date %q is not a valid date", s)
}

// contactRequest is the body of POST and PUT /api/contacts.
type contactRequest struct {
	ID                uint    `json:"id"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Email             string  `json:"email"`
	Password          string  `json:"password"`
	PhoneNumber       string  `json:"phoneNumber"`
	BirthDate         date    `json:"birthDate"`
	CategoryID        uint    `json:"categoryId"`
	SubcategoryID     *uint   `json:"subcategoryId"`
	CustomSubcategory *string `json:"customSubcategory"`
}

func (req *contactRequest) input() service.ContactInput {
	return service.ContactInput{
		ID:                req.ID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PhoneNumber:       req.PhoneNumber,
		BirthDate:         req.BirthDate.t,
		Password:          req.Password,
		CategoryID:        req.CategoryID,
		SubcategoryID:     req.SubcategoryID,
		CustomSubcategory: req.CustomSubcategory,
	}
}

func (s *server) listContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := s.contacts.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (s *server) getContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	contact, err := s.contacts.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (s *server) createContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	contact, err := s.contacts.Create(r.Context(), req.input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

func (s *server) updateContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req contactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	dto, err := s.contacts.Update(r.Context(), id, req.input())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *server) deleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.contacts.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
