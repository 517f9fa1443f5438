package mockapi

// SeedUserNames are the names of the demo API's seeded users, in id order starting at 1.
var SeedUserNames = []string{
	"Leanne Graham",
	"Ervin Howell",
	"Clementine Bauch",
	"Patricia Lebsack",
	"Chelsey Dietrich",
	"Mrs. Dennis Schulist",
	"Kurtis Weissnat",
	"Nicholas Runolfsdottir V",
	"Glenna Reichert",
	"Clementina DuBuque",
}

var seedUsernames = []string{
	"Bret", "Antonette", "Samantha", "Karianne", "Kamren",
	"Leopoldo_Corkery", "Elwyn.Skiles", "Maxime_Nienow", "Delphine", "Moriah.Stanton",
}

var seedEmails = []string{
	"Sincere@april.biz", "Shanna@melissa.tv", "Nathan@yesenia.net", "Julianne.OConner@kory.org",
	"Lucio_Hettinger@annie.ca", "Karley_Dach@jasper.info", "Telly.Hoeger@billy.biz",
	"Sherwood@rosamond.me", "Chaim_McDermott@dana.io", "Rey.Padberg@karina.biz",
}

func seedUsers() []map[string]interface{} {
	users := make([]map[string]interface{}, 0, len(SeedUserNames))
	for i, name := range SeedUserNames {
		users = append(users, map[string]interface{}{
			"id":       i + 1,
			"name":     name,
			"username": seedUsernames[i],
			"email":    seedEmails[i],
		})
	}
	return users
}
