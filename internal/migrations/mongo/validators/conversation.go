package validators

import "go.mongodb.org/mongo-driver/bson"

var ConversationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"sender",
			"message",
			"response",
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

			"message": bson.M{
				"bsonType": "string",
			},

			"response": bson.M{
				"bsonType": "string",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
