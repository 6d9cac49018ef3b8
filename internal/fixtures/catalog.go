package fixtures

// Static reference data. Everything random is derived from it in Generate.

type projectSeed struct {
	name, location, startDate, endDate, description string
}

var projectCatalog = []projectSeed{
	{"Green Tower Apartments", "123 Nguyen Van Linh, District 7, Ho Chi Minh City", "2024-01-15", "2025-06-30", "25-storey apartment block with 300 units"},
	{"Central Plaza Mall", "456 Le Loi, District 1, Ho Chi Minh City", "2024-03-01", "2025-12-31", "Five-floor shopping centre, 15,000 m2"},
	{"Sunrise Township", "321 Vo Van Tan, District 3, Ho Chi Minh City", "2024-02-10", "2026-03-31", "500 villas and townhouses"},
	{"International General Hospital", "654 Nguyen Thi Minh Khai, District 3, Ho Chi Minh City", "2024-04-01", "2025-11-30", "Ten-floor hospital with 500 beds"},
	{"Luxury Five-Star Hotel", "147 Dien Bien Phu, Binh Thanh, Ho Chi Minh City", "2024-05-15", "2026-02-28", "30-floor hotel with 200 rooms"},
}

type departmentSeed struct {
	name, code, manager, phone, description string
}

var departmentCatalog = []departmentSeed{
	{"Construction", "CONS", "Nguyen Van A", "0901234567", "Structural construction work"},
	{"Electrical and Plumbing", "MEP", "Tran Thi B", "0907654321", "Electrical and water installations"},
	{"Finishing", "FIN", "Le Van C", "0912345678", "Interior and exterior finishing"},
	{"Occupational Safety", "SAFE", "Pham Thi D", "0923456789", "Site safety and inspections"},
	{"Logistics", "LOG", "Hoang Van E", "0934567890", "Material transport and storage"},
}

type workerSeed struct {
	code, fullName, gender, dateOfBirth, hireDate, position, department, notes string
	salary                                                                    int64
	onLeave                                                                   bool
}

var workerCatalog = []workerSeed{
	{"NC001", "Nguyen Van An", "male", "1990-05-15", "2023-01-10", "Mason", "CONS", "5 years of experience", 15000000, false},
	{"NC002", "Tran Thi Binh", "female", "1992-08-20", "2023-02-15", "Electrician", "MEP", "Licensed electrician", 16000000, false},
	{"NC003", "Le Van Cuong", "male", "1988-12-10", "2022-06-01", "Foreman", "CONS", "10 years of experience", 20000000, false},
	{"NC004", "Pham Thi Dung", "female", "1995-03-25", "2023-03-20", "Painter", "FIN", "Interior painting", 14000000, false},
	{"NC005", "Hoang Van Em", "male", "1991-07-18", "2023-04-10", "Driver", "LOG", "Truck licence", 13000000, false},
	{"NC006", "Vo Thi Phuong", "female", "1993-09-30", "2023-05-15", "Safety officer", "SAFE", "Safety certification", 17000000, false},
	{"NC007", "Do Van Giang", "male", "1989-11-12", "2022-08-20", "Concrete worker", "CONS", "Concrete pouring", 15500000, false},
	{"NC008", "Bui Thi Hoa", "female", "1994-04-05", "2023-06-01", "Plumber", "MEP", "Water systems", 14500000, false},
	{"NC009", "Ngo Van Hung", "male", "1990-01-22", "2023-07-10", "Tiler", "FIN", "Premium tiling", 15000000, false},
	{"NC010", "Ly Thi Lan", "female", "1992-06-14", "2023-08-05", "Inspector", "SAFE", "Quality inspection", 16000000, false},
	{"NC011", "Trinh Van Long", "male", "1987-10-08", "2022-09-15", "Rebar worker", "CONS", "Reinforcement steel", 16500000, false},
	{"NC012", "Dinh Thi Mai", "female", "1996-02-28", "2023-09-20", "Warehouse clerk", "LOG", "Materials store", 12000000, false},
	{"NC013", "Phan Van Nam", "male", "1991-05-17", "2023-10-01", "Electrician", "MEP", "Power systems", 16000000, false},
	{"NC014", "Vu Thi Oanh", "female", "1993-08-09", "2023-11-10", "Drywall installer", "FIN", "Gypsum ceilings", 14500000, false},
	{"NC015", "Cao Van Phuc", "male", "1989-12-03", "2022-11-25", "Mason", "CONS", "Currently on leave", 15000000, true},
}

type assignmentSeed struct {
	workerCode, project, assignDate, assignedBy, notes string
}

var assignmentCatalog = []assignmentSeed{
	{"NC001", "Green Tower Apartments", "2024-01-20", "Nguyen Van A", "Wall construction"},
	{"NC002", "Green Tower Apartments", "2024-01-22", "Nguyen Van A", "Electrical installation"},
	{"NC003", "Central Plaza Mall", "2024-03-05", "Tran Thi B", "Site supervision"},
	{"NC004", "Central Plaza Mall", "2024-03-10", "Tran Thi B", "Interior painting"},
	{"NC005", "Sunrise Township", "2024-02-15", "Le Van C", "Material transport"},
	{"NC006", "International General Hospital", "2024-04-10", "Pham Thi D", "Safety inspection"},
	{"NC007", "Luxury Five-Star Hotel", "2024-05-20", "Hoang Van E", "Ground floor concrete"},
	{"NC008", "Luxury Five-Star Hotel", "2024-05-25", "Hoang Van E", "Water system installation"},
}
