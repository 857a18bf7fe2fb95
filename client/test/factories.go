package test

import (
	"time"

	"github.com/google/uuid"

	"github.com/tidepool-org/librelinkup/models"
	"github.com/tidepool-org/librelinkup/test"
)

func RandomPatient() models.Patient {
	return models.Patient{
		ID:        uuid.MustParse(test.Faker.UUID().V4()),
		PatientID: uuid.MustParse(test.Faker.UUID().V4()),
		FirstName: test.Faker.Person().FirstName(),
		LastName:  test.Faker.Person().LastName(),
	}
}

func RandomLoginResponse() models.LoginResponse {
	issued := time.Now().Add(-time.Duration(test.Faker.IntBetween(1, 3600)) * time.Second)
	return models.LoginResponse{
		Status: 0,
		Data: models.LoginData{
			User: models.User{
				ID:          test.Faker.UUID().V4(),
				FirstName:   test.Faker.Person().FirstName(),
				LastName:    test.Faker.Person().LastName(),
				Email:       test.Faker.Internet().Email(),
				Country:     test.Faker.RandomStringElement([]string{"US", "DE", "FR", "AU", "CA"}),
				AccountType: "pat",
				UOM:         "1",
				Created:     issued.Add(-time.Hour * 24 * 365).Unix(),
				LastLogin:   issued.Unix(),
				Consents: models.Consents{
					Llu: models.LluConsent{
						PolicyAccept: issued.Unix(),
						TouAccept:    issued.Unix(),
					},
				},
			},
			AuthTicket: models.AuthTicket{
				Token:    test.Faker.UUID().V4(),
				Expires:  issued.Add(180 * 24 * time.Hour).Unix(),
				Duration: (180 * 24 * time.Hour).Milliseconds(),
			},
		},
	}
}
