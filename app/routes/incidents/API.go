package incidents

import (
	"database/sql"

	"factory-kpi/app/config"
	"factory-kpi/app/database"
	"factory-kpi/app/models"
	"factory-kpi/app/storage"

	"github.com/gofiber/fiber/v2"
)

// CreateIncidentAPI accepts a multipart form: description, section_code,
// optional entry_id and an optional photo file stored in the blob store.
func CreateIncidentAPI(c *fiber.Ctx) error {
	description := c.FormValue("description")
	sectionCode := c.FormValue("section_code")
	if description == "" || sectionCode == "" {
		return c.Status(400).JSON(fiber.Map{"ok": false, "error": "description and section_code are required"})
	}

	section, err := database.GetSectionByCode(config.GetDB(), sectionCode)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Section not found"})
		}
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	user := c.Locals("user").(*models.User)
	inc := &models.IncidentReport{
		SectionID:   section.ID,
		ReporterID:  user.ID,
		Description: description,
	}
	if entryID := c.FormValue("entry_id"); entryID != "" {
		inc.EntryID = &entryID
	}

	if file, ferr := c.FormFile("photo"); ferr == nil && file != nil {
		src, err := file.Open()
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"ok": false, "error": "Failed to read photo"})
		}
		defer src.Close()

		key := storage.NewKey(file.Filename)
		if err := Store.Put(key, src); err != nil {
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": "Failed to store photo"})
		}
		inc.PhotoKey = &key
	}

	if err := database.CreateIncident(config.GetDB(), inc); err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}
	if inc.PhotoKey != nil {
		inc.PhotoURL = Store.PublicURL(*inc.PhotoKey)
	}

	return c.JSON(fiber.Map{"ok": true, "incident": inc})
}

func GetIncidentsAPI(c *fiber.Ctx) error {
	sectionID := ""
	if code := c.Query("section"); code != "" {
		section, err := database.GetSectionByCode(config.GetDB(), code)
		if err != nil {
			if err == sql.ErrNoRows {
				return c.Status(404).JSON(fiber.Map{"ok": false, "error": "Section not found"})
			}
			return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
		}
		sectionID = section.ID
	}

	incidents, err := database.GetIncidents(config.GetDB(), sectionID, c.QueryInt("limit", 50))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"ok": false, "error": err.Error()})
	}

	for _, inc := range incidents {
		if inc.PhotoKey != nil {
			inc.PhotoURL = Store.PublicURL(*inc.PhotoKey)
		}
	}

	return c.JSON(fiber.Map{"ok": true, "incidents": incidents, "count": len(incidents)})
}
