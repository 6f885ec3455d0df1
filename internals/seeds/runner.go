package seeds

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"ams_backend/internals/constants"
	academicModel "ams_backend/internals/features/academics/model"
	attendanceModel "ams_backend/internals/features/attendance/model"
	enrollModel "ams_backend/internals/features/enrollments/model"
	timetableModel "ams_backend/internals/features/timetable/model"
	authService "ams_backend/internals/features/users/auth/service"
	userModel "ams_backend/internals/features/users/user/model"
	helper "ams_backend/internals/helpers"
)

const demoPassword = "password123"

// RunAllSeeds loads a small demo fixture: one account per role, one session
// with two courses and two sections, an allocation, an enrollment, a
// timetable slot and two attendance marks. Every step looks up before it
// creates, so rerunning is a no-op.
func RunAllSeeds(db *gorm.DB) error {
	if _, err := seedUser(db, "Demo Admin", "admin@demo.local", constants.RoleAdmin); err != nil {
		return err
	}
	teacher, err := seedUser(db, "Demo Teacher", "teacher@demo.local", constants.RoleTeacher)
	if err != nil {
		return err
	}
	student, err := seedUser(db, "Demo Student", "student@demo.local", constants.RoleStudent)
	if err != nil {
		return err
	}

	session := academicModel.AcademicSessionModel{
		Name:      "Fall 2026",
		StartDate: mustDate("2026-09-01"),
		EndDate:   mustDate("2026-12-20"),
		IsActive:  true,
	}
	if err := db.Where("name = ?", session.Name).FirstOrCreate(&session).Error; err != nil {
		return fmt.Errorf("seed session: %w", err)
	}

	math := academicModel.CourseModel{Name: "Mathematics", Code: "MATH-101", CreditHours: 3}
	if err := db.Where("code = ?", math.Code).FirstOrCreate(&math).Error; err != nil {
		return fmt.Errorf("seed course: %w", err)
	}
	physics := academicModel.CourseModel{Name: "Physics", Code: "PHYS-101", CreditHours: 4}
	if err := db.Where("code = ?", physics.Code).FirstOrCreate(&physics).Error; err != nil {
		return fmt.Errorf("seed course: %w", err)
	}

	sectionA := academicModel.SectionModel{Name: "Section A", AcademicSessionID: session.ID}
	if err := db.Where("name = ? AND academic_session_id = ?", sectionA.Name, session.ID).
		FirstOrCreate(&sectionA).Error; err != nil {
		return fmt.Errorf("seed section: %w", err)
	}
	sectionB := academicModel.SectionModel{Name: "Section B", AcademicSessionID: session.ID}
	if err := db.Where("name = ? AND academic_session_id = ?", sectionB.Name, session.ID).
		FirstOrCreate(&sectionB).Error; err != nil {
		return fmt.Errorf("seed section: %w", err)
	}

	allocation := enrollModel.TeacherAllocationModel{
		TeacherID: teacher.ID,
		CourseID:  math.ID,
		SectionID: sectionA.ID,
	}
	if err := db.Where("teacher_id = ? AND course_id = ? AND section_id = ?",
		allocation.TeacherID, allocation.CourseID, allocation.SectionID).
		FirstOrCreate(&allocation).Error; err != nil {
		return fmt.Errorf("seed allocation: %w", err)
	}

	enrollment := enrollModel.StudentEnrollmentModel{
		StudentID: student.ID,
		CourseID:  math.ID,
		SectionID: sectionA.ID,
	}
	if err := db.Where("student_id = ? AND course_id = ? AND section_id = ?",
		enrollment.StudentID, enrollment.CourseID, enrollment.SectionID).
		FirstOrCreate(&enrollment).Error; err != nil {
		return fmt.Errorf("seed enrollment: %w", err)
	}

	slot := timetableModel.TimetableEntryModel{
		Day:       "Monday",
		StartTime: "09:00",
		EndTime:   "10:00",
		Room:      "R-101",
		SectionID: sectionA.ID,
		CourseID:  &math.ID,
	}
	if err := db.Where("section_id = ? AND day = ? AND start_time = ?",
		slot.SectionID, slot.Day, slot.StartTime).
		FirstOrCreate(&slot).Error; err != nil {
		return fmt.Errorf("seed timetable: %w", err)
	}

	today := helper.TruncateToDay(time.Now())
	marks := []attendanceModel.AttendanceModel{
		{Date: today.AddDate(0, 0, -1), Status: attendanceModel.StatusPresent,
			StudentID: student.ID, CourseID: math.ID, SectionID: sectionA.ID},
		{Date: today, Status: attendanceModel.StatusAbsent,
			StudentID: student.ID, CourseID: math.ID, SectionID: sectionA.ID},
	}
	for i := range marks {
		m := &marks[i]
		if err := db.Where("student_id = ? AND course_id = ? AND date = ?",
			m.StudentID, m.CourseID, m.Date).
			FirstOrCreate(m).Error; err != nil {
			return fmt.Errorf("seed attendance: %w", err)
		}
	}

	log.Println("[INFO] Seed data in place.")
	return nil
}

func seedUser(db *gorm.DB, name, email string, role constants.Role) (*userModel.UserModel, error) {
	hash, err := authService.HashPassword(demoPassword)
	if err != nil {
		return nil, fmt.Errorf("seed user %s: %w", email, err)
	}
	user := userModel.UserModel{
		UserName:     name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := db.Where("email = ?", email).FirstOrCreate(&user).Error; err != nil {
		return nil, fmt.Errorf("seed user %s: %w", email, err)
	}
	return &user, nil
}

func mustDate(s string) time.Time {
	t, err := helper.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
