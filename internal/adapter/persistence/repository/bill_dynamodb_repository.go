package repository

import (
	"context"
	"strings"
	"time"

	"warebill/internal/domain/entities"
	"warebill/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBillsTableName = "bills"
	billCodeClaimPrefix   = "billcode#"
)

type billItem struct {
	ID              string  `dynamodbav:"id"`
	BillCode        string  `dynamodbav:"bill_code"`
	Status          string  `dynamodbav:"status"`
	Capacity        int     `dynamodbav:"capacity"`
	LinkedCount     int     `dynamodbav:"linked_count"`
	TotalWeight     float64 `dynamodbav:"total_weight"`
	TotalChildUnits int     `dynamodbav:"total_child_units"`
	CreatedAt       string  `dynamodbav:"created_at"`
	UpdatedAt       string  `dynamodbav:"updated_at"`
}

// BillDynamoRepository persists Bill entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Bill-code uniqueness uses a claim item in the same table whose id is
// "billcode#<CODE>" and which points at the owning bill. Bill and claim are
// written in one transaction, so a code can never name two bills.

type BillDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb *dynamodb.Client) *BillDynamoRepository {
	return &BillDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLS_TABLE", defaultBillsTableName),
	}
}

func (r *BillDynamoRepository) Create(ctx context.Context, b entities.Bill) (entities.Bill, error) {
	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		return entities.Bill{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.tableName),
					Item: map[string]types.AttributeValue{
						"id":      &types.AttributeValueMemberS{Value: billCodeClaimPrefix + b.BillCode},
						"bill_id": &types.AttributeValueMemberS{Value: b.ID},
					},
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Bill{}, mapConditionErr(err)
	}
	return b, nil
}

func (r *BillDynamoRepository) GetByID(ctx context.Context, id string) (entities.Bill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) GetByCode(ctx context.Context, billCode string) (entities.Bill, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: billCodeClaimPrefix + billCode},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var claim struct {
		BillID string `dynamodbav:"bill_id"`
	}
	if err := attributevalue.UnmarshalMap(out.Item, &claim); err != nil {
		return entities.Bill{}, err
	}
	return r.GetByID(ctx, claim.BillID)
}

func (r *BillDynamoRepository) Complete(ctx context.Context, id string) (entities.Bill, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :completed"),
		UpdateExpression:    aws.String("SET #status = :completed, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(entities.BillStatusCompleted)},
			":now":       &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Bill{}, mapConditionErr(err)
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

func (r *BillDynamoRepository) UpdateLinkedCount(ctx context.Context, id string, linkedCount int) (entities.Bill, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #linked_count = :count, #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#linked_count": "linked_count",
			"#updated_at":   "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":count": &types.AttributeValueMemberN{Value: intToString(linkedCount)},
			":now":   &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Bill{}, mapConditionErr(err)
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

// ListAll scans the table, skipping the bill-code claim items that share it.
func (r *BillDynamoRepository) ListAll(ctx context.Context) ([]entities.Bill, error) {
	var (
		bills   []entities.Bill
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it billItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if strings.HasPrefix(it.ID, billCodeClaimPrefix) {
				continue
			}
			bills = append(bills, fromBillItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return bills, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

func toBillItem(b entities.Bill) billItem {
	return billItem{
		ID:              b.ID,
		BillCode:        b.BillCode,
		Status:          string(b.Status),
		Capacity:        b.Capacity,
		LinkedCount:     b.LinkedCount,
		TotalWeight:     b.TotalWeight,
		TotalChildUnits: b.TotalChildUnits,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromBillItem(it billItem) entities.Bill {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Bill{
		ID:              it.ID,
		BillCode:        it.BillCode,
		Status:          entities.BillStatus(it.Status),
		Capacity:        it.Capacity,
		LinkedCount:     it.LinkedCount,
		TotalWeight:     it.TotalWeight,
		TotalChildUnits: it.TotalChildUnits,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
