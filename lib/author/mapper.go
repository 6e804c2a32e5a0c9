package author

import "github.com/ether/builder-revisions/lib/models/db"

func MapToDB(author Author) db.UserDB {
	return db.UserDB{
		ID:          author.Id,
		Login:       author.Login,
		DisplayName: author.DisplayName,
		Email:       author.Email,
	}
}

func MapFromDB(userDB db.UserDB) Author {
	return Author{
		Id:          userDB.ID,
		Login:       userDB.Login,
		DisplayName: userDB.DisplayName,
		Email:       userDB.Email,
	}
}
