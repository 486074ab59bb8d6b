package model

import "math/rand"

var Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

var Periods = []string{
	"8:30-10:00", "10:00-11:30", "11:30-1:00",
	"2:00-3:30", "3:30-5:00", "5:00-6:30",
}

var Rooms = []string{
	"LT-1", "LT-2", "LT-3", "LT-4", "LT-5",
	"LAB-1", "LAB-2", "LAB-3", "LAB-4", "LAB-5",
}

var Teachers = []string{
	"Dr. Ahmed Khan", "Ms. Sara Ali", "Mr. Hassan Sheikh", "Ms. Fatima Noor",
	"Dr. Muhammad Tariq", "Ms. Ayesha Malik", "Mr. Ali Raza", "Dr. Sana Ullah",
	"Ms. Arooj Fatima", "Mr. Kamran Hussain", "Dr. Zunaira Ahmad", "Ms. Hina Khan",
	"Dr. Hamid Ali", "Mr. Usman Ghani", "Ms. Rabia Nasir", "Dr. Imran Malik",
	"Mr. Asad Mehmood", "Ms. Nadia Sheikh", "Dr. Saira Bano", "Mr. Fahad Ahmad",
	"Dr. Omar Farooq", "Ms. Zara Ahmed", "Mr. Bilal Hassan", "Dr. Yasmin Akhtar",
	"Mr. Talha Malik", "Ms. Sana Iqbal", "Dr. Faisal Mahmood", "Ms. Hira Siddiqui",
}

// generateSlots builds the candidate-slot universe: every day-period-room
// combination, each bound to a teacher drawn uniformly at random from the
// pool. A teacher may appear in many generated slots; clashes are only judged
// over assigned slots.
func generateSlots(rng *rand.Rand) []Slot {
	slots := make([]Slot, 0, len(Days)*len(Periods)*len(Rooms))
	for _, day := range Days {
		for _, period := range Periods {
			for _, room := range Rooms {
				slots = append(slots, Slot{
					Day:     day,
					Period:  period,
					Room:    room,
					Teacher: Teachers[rng.Intn(len(Teachers))],
				})
			}
		}
	}
	return slots
}
