package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/dami/hope/internal/models"
)

func TestSubmitVolunteerSendsPayloadBesideCV(t *testing.T) {
	var (
		payloadField string
		cvName       string
		cvContent    string
	)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			return
		}
		payloadField = r.FormValue("payload")
		file, header, err := r.FormFile("cv")
		if err != nil {
			t.Errorf("cv part: %v", err)
			return
		}
		defer file.Close()
		cvName = header.Filename
		data, _ := io.ReadAll(file)
		cvContent = string(data)
		json.NewEncoder(w).Encode(models.Volunteer{ID: 7})
	}))

	payload := &VolunteerPayload{
		FirstName:    "Ada",
		LastName:     "Obi",
		Email:        "ada@example.org",
		PhoneNumber:  "0800",
		Age:          "29",
		Country:      "NG",
		Role:         models.RoleLabTech,
		Availability: models.AvailabilityPartTime,
		Hours:        "10",
		Days:         "weekends",
	}
	cv := FilePart{Reader: strings.NewReader("cv bytes"), FileName: "ada-cv.pdf"}

	v, err := client.SubmitVolunteer(payload, cv)
	if err != nil {
		t.Fatalf("SubmitVolunteer: %v", err)
	}
	if v.ID != 7 {
		t.Fatalf("id = %d, want 7", v.ID)
	}
	if cvName != "ada-cv.pdf" || cvContent != "cv bytes" {
		t.Fatalf("cv part = (%q, %q)", cvName, cvContent)
	}

	var decoded VolunteerPayload
	if err := json.Unmarshal([]byte(payloadField), &decoded); err != nil {
		t.Fatalf("decode payload field: %v", err)
	}
	if decoded != *payload {
		t.Fatalf("payload round trip mismatch:\n got %+v\nwant %+v", decoded, *payload)
	}
}

func TestCreateProjectIndexesMediaFileFields(t *testing.T) {
	upload := ProjectUpload{
		Payload:    ProjectPayload{Title: "Clean water"},
		CoverPhoto: "/tmp/cover.jpg",
		MediaFiles: []string{"/tmp/a.jpg", "/tmp/b.jpg"},
	}

	parts := upload.parts()
	wantFields := []string{"media_files[0]", "media_files[1]", "cover_photo"}
	if len(parts) != len(wantFields) {
		t.Fatalf("got %d parts, want %d", len(parts), len(wantFields))
	}
	for i, want := range wantFields {
		if parts[i].Field != want {
			t.Errorf("part[%d].Field = %q, want %q", i, parts[i].Field, want)
		}
	}
}

func TestCreateProjectRequiresLogin(t *testing.T) {
	hits := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	_, err := client.CreateProject(ProjectUpload{Payload: ProjectPayload{Title: "x"}})
	if err == nil {
		t.Fatalf("expected error without a session")
	}
	if hits != 0 {
		t.Fatalf("expected no request to be sent, server saw %d", hits)
	}
}
