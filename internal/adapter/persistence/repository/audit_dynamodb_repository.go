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
	defaultAuditTableName  = "audit_entries"
	auditBillIDIndex       = "bill_id-index"
	auditContainerIDIndex  = "container_id-index"
)

type auditItem struct {
	ID          string `dynamodbav:"id"`
	OccurredAt  string `dynamodbav:"occurred_at"`
	ActorID     string `dynamodbav:"actor_id"`
	ContainerID string `dynamodbav:"container_id,omitempty"`
	BillID      string `dynamodbav:"bill_id,omitempty"`
	Outcome     string `dynamodbav:"outcome"`
	Message     string `dynamodbav:"message"`
}

// AuditDynamoRepository persists AuditEntry records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: bill_id-index (PK: bill_id)
//   - GSI: container_id-index (PK: container_id)
//
// Append-only. Successful link/unlink entries arrive through the assignment
// transactions; this repository writes the failure trail and serves reads.

type AuditDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditRepository = (*AuditDynamoRepository)(nil)

func NewAuditDynamoRepository(ddb *dynamodb.Client) *AuditDynamoRepository {
	return &AuditDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_ENTRIES_TABLE", defaultAuditTableName),
	}
}

func (r *AuditDynamoRepository) Append(ctx context.Context, e entities.AuditEntry) error {
	av, err := attributevalue.MarshalMap(toAuditItem(e))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *AuditDynamoRepository) ListByBill(ctx context.Context, billID string) ([]entities.AuditEntry, error) {
	return r.queryIndex(ctx, auditBillIDIndex, "bill_id", billID)
}

func (r *AuditDynamoRepository) ListByContainer(ctx context.Context, containerID string) ([]entities.AuditEntry, error) {
	return r.queryIndex(ctx, auditContainerIDIndex, "container_id", containerID)
}

func (r *AuditDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.AuditEntry, error) {
	var (
		entries []entities.AuditEntry
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(index),
			KeyConditionExpression: aws.String("#key = :value"),
			ExpressionAttributeNames: map[string]string{
				"#key": key,
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":value": &types.AttributeValueMemberS{Value: value},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it auditItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			entries = append(entries, fromAuditItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return entries, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

func toAuditItem(e entities.AuditEntry) auditItem {
	return auditItem{
		ID:          e.ID,
		OccurredAt:  e.OccurredAt.UTC().Format(time.RFC3339Nano),
		ActorID:     e.ActorID,
		ContainerID: e.ContainerID,
		BillID:      e.BillID,
		Outcome:     string(e.Outcome),
		Message:     e.Message,
	}
}

func fromAuditItem(it auditItem) entities.AuditEntry {
	occurredAt, _ := time.Parse(time.RFC3339Nano, it.OccurredAt)
	return entities.AuditEntry{
		ID:          it.ID,
		OccurredAt:  occurredAt,
		ActorID:     it.ActorID,
		ContainerID: it.ContainerID,
		BillID:      it.BillID,
		Outcome:     entities.LinkOutcome(it.Outcome),
		Message:     it.Message,
	}
}
