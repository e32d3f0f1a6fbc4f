package services

// Services defined in this package:
// - UserService: user accounts, credentials and display names
// - DepartmentService: academic departments
// - CourseService: courses and their sections
// - RoomService: examination rooms
