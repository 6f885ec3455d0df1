package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	academicModel "ams_backend/internals/features/academics/model"
	"ams_backend/internals/features/timetable/dto"
	"ams_backend/internals/features/timetable/model"
	"ams_backend/internals/features/timetable/service"
	helper "ams_backend/internals/helpers"
)

type TimetableController struct {
	DB *gorm.DB
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db}
}

// GetTimetable returns a section's slots in calendar order, break slots
// included.
func (tc *TimetableController) GetTimetable(c *fiber.Ctx) error {
	sectionID, err := uuid.Parse(c.Params("sectionId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid section ID")
	}

	rows := make([]dto.TimetableEntryResponse, 0)
	err = tc.DB.Table("timetable_entries AS te").
		Select("te.id, te.day, te.start_time, te.end_time, te.room, COALESCE(c.name, 'Break') AS course_name").
		Joins("LEFT JOIN courses AS c ON c.id = te.course_id").
		Where("te.section_id = ?", sectionID).
		Order(service.WeekdayOrderSQL("te.day") + ", te.start_time ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.FromDBError(err, "Timetable not found")
	}
	return helper.Success(c, "OK", rows)
}

// AddTimetableEntry inserts a slot after a linear conflict scan over the
// section's existing slots on the same day. Slots touching only at a
// boundary are allowed.
func (tc *TimetableController) AddTimetableEntry(c *fiber.Ctx) error {
	var req dto.AddTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	newStart, newEnd, err := service.ValidateSlot(req.StartTime, req.EndTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var section academicModel.SectionModel
	if err := tc.DB.First(&section, "id = ?", req.SectionID).Error; err != nil {
		return helper.FromDBError(err, "Section not found")
	}
	if req.CourseID != nil {
		var course academicModel.CourseModel
		if err := tc.DB.First(&course, "id = ?", *req.CourseID).Error; err != nil {
			return helper.FromDBError(err, "Course not found")
		}
	}

	var existing []model.TimetableEntryModel
	if err := tc.DB.
		Where("section_id = ? AND day = ?", req.SectionID, req.Day).
		Find(&existing).Error; err != nil {
		return helper.FromDBError(err, "Timetable not found")
	}
	for _, e := range existing {
		oldStart, oldEnd, err := service.ValidateSlot(e.StartTime, e.EndTime)
		if err != nil {
			continue // stored slots are validated on insert
		}
		if service.Overlaps(newStart, newEnd, oldStart, oldEnd) {
			return fiber.NewError(fiber.StatusConflict, "Time slot conflict detected for this section")
		}
	}

	entry := model.TimetableEntryModel{
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Room:      req.Room,
		SectionID: req.SectionID,
		CourseID:  req.CourseID,
	}
	if err := tc.DB.Create(&entry).Error; err != nil {
		return helper.FromDBError(err, "Timetable not found")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Timetable entry added", entry)
}

func (tc *TimetableController) DeleteTimetableEntry(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid timetable entry ID")
	}

	var entry model.TimetableEntryModel
	if err := tc.DB.First(&entry, "id = ?", id).Error; err != nil {
		return helper.FromDBError(err, "Timetable entry not found")
	}
	if err := tc.DB.Delete(&entry).Error; err != nil {
		return helper.FromDBError(err, "Timetable entry not found")
	}
	return helper.Success(c, "Timetable entry deleted", nil)
}
