package repository

import (
	"context"
	"fmt"

	"production_scheduler/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMetaTableName = "app_meta"
	dataVersionKey       = "data_version"
)

// MetaDynamoRepository keeps the order-book data version in a key/value table.
//
// Table requirements:
//   - PK: key (string)
//   - value: number, incremented atomically with ADD

type MetaDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IDataVersionStore = (*MetaDynamoRepository)(nil)

func NewMetaDynamoRepository(ddb DynamoDBAPI, tableName string) *MetaDynamoRepository {
	if tableName == "" {
		tableName = defaultMetaTableName
	}
	return &MetaDynamoRepository{ddb: ddb, tableName: tableName}
}

// Current returns "0" until the first write.
func (r *MetaDynamoRepository) Current(ctx context.Context) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: dataVersionKey},
		},
		ConsistentRead:       aws.Bool(true),
		ProjectionExpression: aws.String("#value"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
	})
	if err != nil {
		return "", err
	}
	return versionValue(out.Item)
}

func (r *MetaDynamoRepository) Bump(ctx context.Context) (string, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: dataVersionKey},
		},
		UpdateExpression: aws.String("ADD #value :one"),
		ExpressionAttributeNames: map[string]string{
			"#value": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return "", err
	}
	return versionValue(out.Attributes)
}

func versionValue(item map[string]types.AttributeValue) (string, error) {
	raw, ok := item["value"]
	if !ok {
		return "0", nil
	}
	switch v := raw.(type) {
	case *types.AttributeValueMemberN:
		return v.Value, nil
	case *types.AttributeValueMemberS:
		return v.Value, nil
	default:
		return "", fmt.Errorf("app_meta %s: unexpected attribute type %T", dataVersionKey, raw)
	}
}
