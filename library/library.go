package library

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/jsphweid/zzsound/constants"
)

const tableName = "zzsound-library"

// GetSoundStrings fetches the hex code strings for named sound effects from
// the library table.
func GetSoundStrings(names []string) map[string]string {
	if len(names) > 10 {
		panic("Not supposed to pass in more than 10 names!")
	}

	res := make(map[string]string)

	if len(names) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, name := range names {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(name),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetDBEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[tableName] {
		res[*v["PK"].S] = *v["Codes"].S
	}

	return res
}
