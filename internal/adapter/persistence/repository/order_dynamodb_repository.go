package repository

import (
	"context"

	"production_scheduler/internal/domain/entities"
	"production_scheduler/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultOrdersTableName = "orders"

type orderItem struct {
	ID               string `dynamodbav:"id"`
	WorkOrderID      string `dynamodbav:"wo"`
	Quote            string `dynamodbav:"quote"`
	PONumber         string `dynamodbav:"po_number"`
	Status           string `dynamodbav:"status"`
	CustomerName     string `dynamodbav:"customer_name"`
	ModelDescription string `dynamodbav:"model_description"`
	Price            string `dynamodbav:"price"`
	ScheduledDate    string `dynamodbav:"scheduled_date"`
	UploadedName     string `dynamodbav:"uploaded_name"`
}

// DynamoDBAPI is the subset of *dynamodb.Client used by the repositories.
type DynamoDBAPI interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

// OrderDynamoRepository persists the order book in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// There is no secondary index: the portals always read the whole book, which a
// paginated Scan serves. Writes are unconditional PutItem calls (last writer wins).

type OrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IOrderStore = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *OrderDynamoRepository {
	if tableName == "" {
		tableName = defaultOrdersTableName
	}
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) ReadAll(ctx context.Context) ([]entities.Order, error) {
	var (
		orders []entities.Order
		start  map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: start,
			ConsistentRead:    aws.Bool(true),
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it orderItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			orders = append(orders, fromOrderItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}
	if orders == nil {
		orders = []entities.Order{}
	}
	return orders, nil
}

func (r *OrderDynamoRepository) Upsert(ctx context.Context, o entities.Order) error {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
		ID:               o.ID,
		WorkOrderID:      o.WorkOrderID,
		Quote:            o.Quote,
		PONumber:         o.PONumber,
		Status:           o.Status,
		CustomerName:     o.CustomerName,
		ModelDescription: o.ModelDescription,
		Price:            o.Price,
		ScheduledDate:    o.ScheduledDate,
		UploadedName:     o.UploadedName,
	}
}

func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:               it.ID,
		WorkOrderID:      it.WorkOrderID,
		Quote:            it.Quote,
		PONumber:         it.PONumber,
		Status:           it.Status,
		CustomerName:     it.CustomerName,
		ModelDescription: it.ModelDescription,
		Price:            it.Price,
		ScheduledDate:    it.ScheduledDate,
		UploadedName:     it.UploadedName,
	}
}
