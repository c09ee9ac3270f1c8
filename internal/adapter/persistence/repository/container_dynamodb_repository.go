package repository

import (
	"context"
	"time"

	"warebill/internal/domain/entities"
	"warebill/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContainersTableName = "containers"
	containersIDIndex          = "id-index"
)

type containerItem struct {
	Code       string  `dynamodbav:"code"`
	ID         string  `dynamodbav:"id"`
	Kind       string  `dynamodbav:"kind"`
	ParentCode string  `dynamodbav:"parent_code,omitempty"`
	ChildCount int     `dynamodbav:"child_count"`
	WeightKg   float64 `dynamodbav:"weight_kg"`
	Status     string  `dynamodbav:"status"`
	CreatedAt  string  `dynamodbav:"created_at"`
	UpdatedAt  string  `dynamodbav:"updated_at"`
}

// ContainerDynamoRepository persists Container entities in DynamoDB.
//
// Table requirements:
//   - PK: code (string, normalized uppercase)
//   - GSI: id-index (PK: id)
//
// The normalized code as PK is the uniqueness constraint resolve-or-create
// leans on: the second concurrent first-scan loses the conditional put.

type ContainerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContainerRepository = (*ContainerDynamoRepository)(nil)

func NewContainerDynamoRepository(ddb *dynamodb.Client) *ContainerDynamoRepository {
	return &ContainerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTAINERS_TABLE", defaultContainersTableName),
	}
}

func (r *ContainerDynamoRepository) Create(ctx context.Context, c entities.Container) (entities.Container, error) {
	it := toContainerItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Container{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#code)"),
		ExpressionAttributeNames: map[string]string{
			"#code": "code",
		},
	})
	if err != nil {
		return entities.Container{}, mapConditionErr(err)
	}
	return c, nil
}

func (r *ContainerDynamoRepository) GetByCode(ctx context.Context, code string) (entities.Container, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"code": &types.AttributeValueMemberS{Value: code},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Container{}, err
	}
	if len(out.Item) == 0 {
		return entities.Container{}, nil
	}

	var it containerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Container{}, err
	}
	return fromContainerItem(it), nil
}

func (r *ContainerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Container, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(containersIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Container{}, err
	}
	if len(out.Items) == 0 {
		return entities.Container{}, nil
	}

	var it containerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Container{}, err
	}
	return fromContainerItem(it), nil
}

// AttachChild sets the child's parent pointer and bumps the parent's count
// and weight in one transaction. The child-side condition (no parent yet)
// keeps a child on exactly one parent even when two stations scan it at once.
func (r *ContainerDynamoRepository) AttachChild(ctx context.Context, parentCode, childCode string, weightKg float64) (entities.Container, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"code": &types.AttributeValueMemberS{Value: childCode},
					},
					ConditionExpression: aws.String("attribute_exists(#code) AND attribute_not_exists(#parent_code)"),
					UpdateExpression:    aws.String("SET #parent_code = :parent, #weight_kg = :weight, #updated_at = :now"),
					ExpressionAttributeNames: map[string]string{
						"#code":        "code",
						"#parent_code": "parent_code",
						"#weight_kg":   "weight_kg",
						"#updated_at":  "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":parent": &types.AttributeValueMemberS{Value: parentCode},
						":weight": &types.AttributeValueMemberN{Value: floatToString(weightKg)},
						":now":    &types.AttributeValueMemberS{Value: now},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"code": &types.AttributeValueMemberS{Value: parentCode},
					},
					ConditionExpression: aws.String("attribute_exists(#code)"),
					UpdateExpression: aws.String(
						"SET #child_count = #child_count + :one, #weight_kg = #weight_kg + :weight, #status = :status, #updated_at = :now"),
					ExpressionAttributeNames: map[string]string{
						"#code":        "code",
						"#child_count": "child_count",
						"#weight_kg":   "weight_kg",
						"#status":      "status",
						"#updated_at":  "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":one":    &types.AttributeValueMemberN{Value: "1"},
						":weight": &types.AttributeValueMemberN{Value: floatToString(weightKg)},
						":status": &types.AttributeValueMemberS{Value: string(entities.ContainerStatusInProgress)},
						":now":    &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Container{}, mapConditionErr(err)
	}
	return r.GetByCode(ctx, parentCode)
}

func toContainerItem(c entities.Container) containerItem {
	return containerItem{
		Code:       c.Code,
		ID:         c.ID,
		Kind:       string(c.Kind),
		ParentCode: c.ParentCode,
		ChildCount: c.ChildCount,
		WeightKg:   c.WeightKg,
		Status:     string(c.Status),
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContainerItem(it containerItem) entities.Container {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Container{
		ID:         it.ID,
		Code:       it.Code,
		Kind:       entities.ContainerKind(it.Kind),
		ParentCode: it.ParentCode,
		ChildCount: it.ChildCount,
		WeightKg:   it.WeightKg,
		Status:     entities.ContainerStatus(it.Status),
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
