// ABOUTME: Wire representations for the record service (snake_case naming)
// ABOUTME: One declared bidirectional mapping per record type, no reflection tricks
package api

import "github.com/Davi-web/cms-dashboard/models"

// The record service speaks snake_case; the in-memory model is camelCase.
// Each record type gets one wire struct and one conversion pair. The mapping
// is purely a naming bridge; values cross unchanged in both directions.

type activityWire struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
	CreatedAt   string `json:"created_at"`
}

type addressWire struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
	Country string `json:"country,omitempty"`
}

type contactWire struct {
	ID               string         `json:"id"`
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	Company          string         `json:"company"`
	Position         string         `json:"position"`
	Tags             []string       `json:"tags"`
	Notes            string         `json:"notes"`
	Status           string         `json:"status"`
	CreatedAt        string         `json:"created_at"`
	LastContact      string         `json:"last_contact"`
	Address          *addressWire   `json:"address,omitempty"`
	Birthday         string         `json:"birthday,omitempty"`
	Website          string         `json:"website,omitempty"`
	LinkedIn         string         `json:"linked_in,omitempty"`
	Twitter          string         `json:"twitter,omitempty"`
	LeadSource       string         `json:"lead_source,omitempty"`
	PreferredContact string         `json:"preferred_contact,omitempty"`
	Activities       []activityWire `json:"activities"`
}

type companyWire struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Industry  string `json:"industry"`
	Website   string `json:"website"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Size      string `json:"size"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
}

type taskWire struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	ContactID   string `json:"contact_id,omitempty"`
	ContactName string `json:"contact_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	DueDate     string `json:"due_date"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at,omitempty"`
}

func activityToWire(a models.Activity) activityWire {
	return activityWire{
		ID:          a.ID,
		Type:        a.Type,
		Description: a.Description,
		Date:        a.Date,
		CreatedAt:   a.CreatedAt,
	}
}

func activityFromWire(w activityWire) models.Activity {
	return models.Activity{
		ID:          w.ID,
		Type:        w.Type,
		Description: w.Description,
		Date:        w.Date,
		CreatedAt:   w.CreatedAt,
	}
}

func contactToWire(c models.Contact) contactWire {
	w := contactWire{
		ID:               c.ID,
		FirstName:        c.FirstName,
		LastName:         c.LastName,
		Email:            c.Email,
		Phone:            c.Phone,
		Company:          c.Company,
		Position:         c.Position,
		Tags:             c.Tags,
		Notes:            c.Notes,
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
		LastContact:      c.LastContact,
		Birthday:         c.Birthday,
		Website:          c.Website,
		LinkedIn:         c.LinkedIn,
		Twitter:          c.Twitter,
		LeadSource:       c.LeadSource,
		PreferredContact: c.PreferredContact,
	}
	if c.Address != nil {
		w.Address = &addressWire{
			Street:  c.Address.Street,
			City:    c.Address.City,
			State:   c.Address.State,
			ZipCode: c.Address.ZipCode,
			Country: c.Address.Country,
		}
	}
	w.Activities = make([]activityWire, 0, len(c.Activities))
	for _, a := range c.Activities {
		w.Activities = append(w.Activities, activityToWire(a))
	}
	return w
}

func contactFromWire(w contactWire) models.Contact {
	c := models.Contact{
		ID:               w.ID,
		FirstName:        w.FirstName,
		LastName:         w.LastName,
		Email:            w.Email,
		Phone:            w.Phone,
		Company:          w.Company,
		Position:         w.Position,
		Tags:             w.Tags,
		Notes:            w.Notes,
		Status:           w.Status,
		CreatedAt:        w.CreatedAt,
		LastContact:      w.LastContact,
		Birthday:         w.Birthday,
		Website:          w.Website,
		LinkedIn:         w.LinkedIn,
		Twitter:          w.Twitter,
		LeadSource:       w.LeadSource,
		PreferredContact: w.PreferredContact,
	}
	if w.Address != nil {
		c.Address = &models.Address{
			Street:  w.Address.Street,
			City:    w.Address.City,
			State:   w.Address.State,
			ZipCode: w.Address.ZipCode,
			Country: w.Address.Country,
		}
	}
	c.Activities = make([]models.Activity, 0, len(w.Activities))
	for _, a := range w.Activities {
		c.Activities = append(c.Activities, activityFromWire(a))
	}
	return models.NormalizeContact(c)
}

func companyToWire(c models.Company) companyWire {
	return companyWire{
		ID:        c.ID,
		Name:      c.Name,
		Industry:  c.Industry,
		Website:   c.Website,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		City:      c.City,
		Country:   c.Country,
		Size:      c.Size,
		Status:    c.Status,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}

func companyFromWire(w companyWire) models.Company {
	return models.Company{
		ID:        w.ID,
		Name:      w.Name,
		Industry:  w.Industry,
		Website:   w.Website,
		Phone:     w.Phone,
		Email:     w.Email,
		Address:   w.Address,
		City:      w.City,
		Country:   w.Country,
		Size:      w.Size,
		Status:    w.Status,
		Notes:     w.Notes,
		CreatedAt: w.CreatedAt,
	}
}

func taskToWire(t models.Task) taskWire {
	return taskWire{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Type:        t.Type,
		Priority:    t.Priority,
		Status:      t.Status,
		ContactID:   t.ContactID,
		ContactName: t.ContactName,
		CompanyName: t.CompanyName,
		DueDate:     t.DueDate,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		CompletedAt: t.CompletedAt,
	}
}

func taskFromWire(w taskWire) models.Task {
	return models.Task{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Type:        w.Type,
		Priority:    w.Priority,
		Status:      w.Status,
		ContactID:   w.ContactID,
		ContactName: w.ContactName,
		CompanyName: w.CompanyName,
		DueDate:     w.DueDate,
		Completed:   w.Completed,
		CreatedAt:   w.CreatedAt,
		CompletedAt: w.CompletedAt,
	}
}

func contactsToWire(in []models.Contact) []contactWire {
	out := make([]contactWire, 0, len(in))
	for _, c := range in {
		out = append(out, contactToWire(c))
	}
	return out
}

func contactsFromWire(in []contactWire) []models.Contact {
	out := make([]models.Contact, 0, len(in))
	for _, w := range in {
		out = append(out, contactFromWire(w))
	}
	return out
}

func companiesToWire(in []models.Company) []companyWire {
	out := make([]companyWire, 0, len(in))
	for _, c := range in {
		out = append(out, companyToWire(c))
	}
	return out
}

func companiesFromWire(in []companyWire) []models.Company {
	out := make([]models.Company, 0, len(in))
	for _, w := range in {
		out = append(out, companyFromWire(w))
	}
	return out
}

func tasksToWire(in []models.Task) []taskWire {
	out := make([]taskWire, 0, len(in))
	for _, t := range in {
		out = append(out, taskToWire(t))
	}
	return out
}

func tasksFromWire(in []taskWire) []models.Task {
	out := make([]models.Task, 0, len(in))
	for _, w := range in {
		out = append(out, taskFromWire(w))
	}
	return out
}
