package seed

import "course-records-backend/internal/catalog"

// offering is one row of the default course listing.
type offering struct {
	code       string
	instructor string
	location   string
	timeSlot   string
	capacity   int
	enrolled   int
}

type department struct {
	code      string
	chair     string
	majors    int
	offerings []offering
}

var defaultDepartments = []department{
	{
		code: "COMS", chair: "Luca Carloni", majors: 2700,
		offerings: []offering{
			{"1004", "Adam Cannon", "417 IAB", "11:40-12:55", 400, 249},
			{"3134", "Brian Borowski", "301 URIS", "4:10-5:25", 250, 242},
			{"3157", "Jae Lee", "417 IAB", "4:10-5:25", 400, 311},
			{"3203", "Ansaf Salleb-Aouissi", "301 URIS", "10:10-11:25", 250, 215},
			{"3261", "Josh Alman", "417 IAB", "2:40-3:55", 150, 140},
			{"3251", "Tony Dear", "402 CHANDLER", "1:10-3:40", 125, 99},
			{"3827", "Daniel Rubenstein", "207 Math", "10:10-11:25", 300, 283},
			{"4156", "Gail Kaiser", "501 NWC", "10:10-11:25", 120, 109},
		},
	},
	{
		code: "CHEM", chair: "Laura J. Kaufman", majors: 250,
		offerings: []offering{
			{"1403", "Ruben M Savizky", "309 HAV", "6:10-7:25", 120, 100},
			{"1500", "Joseph C Ulichny", "302 HAV", "6:10-9:50", 46, 46},
			{"2045", "Luis M Campos", "209 HAV", "1:10-2:25", 50, 29},
			{"2444", "Christopher Eckdahl", "309 HAV", "11:40-12:55", 150, 150},
			{"2494", "Talha Siddiqui", "202 HAV", "1:10-5:00", 24, 18},
			{"3080", "Milan Delor", "209 HAV", "10:10-11:25", 60, 18},
			{"4071", "Jonathan S Owen", "320 HAV", "8:40-9:55", 42, 29},
			{"4102", "Dalibor Sames", "320 HAV", "10:10-11:25", 28, 27},
		},
	},
	{
		code: "PHYS", chair: "Dam Thanh Son", majors: 43,
		offerings: []offering{
			{"1001", "Szabolcs Marka", "301 PUP", "2:40-3:55", 150, 131},
			{"1221", "James G. Mccann", "301 PUP", "4:10-5:25", 150, 118},
			{"1520", "Victor G. Moffat", "630 MUDD", "4:10-5:25", 150, 150},
			{"2000", "Frank E. L. Banta", "402 CHANDLER", "1:10-3:40", 100, 98},
			{"3801", "Katherine M. McMahon", "603 MUDD", "4:10-5:25", 150, 96},
			{"4205", "Michael P. Larkin", "309 HAV", "6:10-9:50", 30, 22},
		},
	},
	{
		code: "ECON", chair: "Michael Woodford", majors: 2345,
		offerings: []offering{
			{"1105", "Waseem Noor", "309 HAV", "2:40-3:55", 210, 187},
			{"2257", "Tamrat Gashaw", "428 PUP", "10:10-11:25", 125, 63},
			{"3211", "Murat Yilmaz", "310 FAY", "4:10-5:25", 96, 81},
			{"3213", "Miles Leahey", "702 HAM", "4:10-5:25", 86, 77},
			{"3412", "Thomas Piskula", "702 HAM", "11:40-12:55", 86, 81},
			{"4415", "Evan D Sadler", "309 HAV", "10:10-11:25", 110, 63},
			{"4710", "Matthieu Gomez", "517 HAM", "8:40-9:55", 86, 37},
			{"4840", "Mark Dean", "142 URIS", "2:40-3:55", 108, 67},
		},
	},
	{
		code: "IEOR", chair: "Jay Sethuraman", majors: 67,
		offerings: []offering{
			{"2500", "Uday Menon", "627 MUDD", "11:40-12:55", 50, 50},
			{"3404", "Christopher J Dolan", "303 MUDD", "10:10-11:25", 80, 73},
			{"3658", "Daniel Lacker", "310 FAY", "10:10-11:25", 96, 87},
			{"4102", "Antonius B Dieker", "209 HAM", "10:10-11:25", 110, 92},
			{"4106", "Kaizheng Wang", "501 NWC", "10:10-11:25", 161, 150},
			{"4405", "Yuri Faenza", "517 HAV", "11:40-12:55", 80, 19},
			{"4511", "Michael Robbins", "633 MUDD", "9:00-11:30", 150, 50},
			{"4540", "Krzysztof M Choromanski", "633 MUDD", "7:10-9:40", 60, 33},
		},
	},
}

// Catalog builds the default department and course catalog from scratch.
// Every call returns an independent tree.
func Catalog() *catalog.Database {
	db := catalog.NewDatabase()
	for _, d := range defaultDepartments {
		dept := catalog.NewDepartment(d.code, nil, d.chair, d.majors)
		for _, o := range d.offerings {
			dept.CreateCourse(o.code, o.instructor, o.location, o.timeSlot, o.capacity).SetEnrolledCount(o.enrolled)
		}
		db.AddDepartment(dept)
	}
	return db
}
