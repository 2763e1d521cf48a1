package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"sender",
			"raw_dates",
			"nights",
			"status",
			"total",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"sender": bson.M{
				"bsonType": "string",
				"pattern":  `^\+[1-9][0-9]{7,14}$`,
			},

			"raw_dates": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 100,
			},

			"nights": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"pending",
					"confirmed",
				},
			},

			"total": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
