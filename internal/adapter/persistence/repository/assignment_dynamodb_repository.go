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
	defaultAssignmentsTableName = "assignments"
	defaultClaimsTableName      = "container_claims"
	assignmentsBillIDIndex      = "bill_id-index"
)

type assignmentItem struct {
	ID            string  `dynamodbav:"id"`
	BillID        string  `dynamodbav:"bill_id"`
	ContainerID   string  `dynamodbav:"container_id"`
	ContainerCode string  `dynamodbav:"container_code"`
	ChildUnits    int     `dynamodbav:"child_units"`
	WeightKg      float64 `dynamodbav:"weight_kg"`
	ActorID       string  `dynamodbav:"actor_id"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

type claimItem struct {
	ContainerID string `dynamodbav:"container_id"`
	BillID      string `dynamodbav:"bill_id"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// AssignmentDynamoRepository persists assignments and container claims, and
// carries the transactional link/unlink commits.
//
// Table requirements:
//   - assignments: PK id ("<bill_id>#<container_id>"),
//     GSI bill_id-index (PK: bill_id), GSI container_id-index (PK: container_id)
//   - container_claims: PK container_id
//
// The claim table is the cross-bill exclusivity constraint: at most one item
// per container, inserted only through CommitLink's conditional put. Bills
// and audit entries live in their own tables but join each commit, which is
// why this repository knows their table names too.

type AssignmentDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	claimsTableName string
	billsTableName  string
	auditTableName  string
}

var _ interfaces.IAssignmentRepository = (*AssignmentDynamoRepository)(nil)

func NewAssignmentDynamoRepository(ddb *dynamodb.Client) *AssignmentDynamoRepository {
	return &AssignmentDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("ASSIGNMENTS_TABLE", defaultAssignmentsTableName),
		claimsTableName: getenvDefault("CONTAINER_CLAIMS_TABLE", defaultClaimsTableName),
		billsTableName:  getenvDefault("BILLS_TABLE", defaultBillsTableName),
		auditTableName:  getenvDefault("AUDIT_ENTRIES_TABLE", defaultAuditTableName),
	}
}

func (r *AssignmentDynamoRepository) GetClaim(ctx context.Context, containerID string) (entities.ContainerClaim, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.claimsTableName),
		Key: map[string]types.AttributeValue{
			"container_id": &types.AttributeValueMemberS{Value: containerID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContainerClaim{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContainerClaim{}, nil
	}

	var it claimItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContainerClaim{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ContainerClaim{ContainerID: it.ContainerID, BillID: it.BillID, CreatedAt: createdAt}, nil
}

func (r *AssignmentDynamoRepository) Get(ctx context.Context, billID, containerID string) (entities.Assignment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: entities.AssignmentID(billID, containerID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Assignment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Assignment{}, nil
	}

	var it assignmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Assignment{}, err
	}
	return fromAssignmentItem(it), nil
}

// CountByBill queries the bill_id index with Select COUNT; this is the
// authoritative number the reconciler compares the denormalized counter to.
func (r *AssignmentDynamoRepository) CountByBill(ctx context.Context, billID string) (int, error) {
	var (
		total   int
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(assignmentsBillIDIndex),
			KeyConditionExpression: aws.String("bill_id = :bid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":bid": &types.AttributeValueMemberS{Value: billID},
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return 0, err
		}
		total += int(out.Count)
		if len(out.LastEvaluatedKey) == 0 {
			return total, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

func (r *AssignmentDynamoRepository) ListByBill(ctx context.Context, billID string) ([]entities.Assignment, error) {
	var (
		assignments []entities.Assignment
		lastKey     map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(assignmentsBillIDIndex),
			KeyConditionExpression: aws.String("bill_id = :bid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":bid": &types.AttributeValueMemberS{Value: billID},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it assignmentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			assignments = append(assignments, fromAssignmentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return assignments, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}

// CommitLink writes the claim, the assignment, the bill counter update and
// the success audit entry in a single TransactWriteItems call. The conditions
// restate the engine's prechecks, so a racing writer on another instance
// cannot slip a duplicate claim or an over-capacity link through.
func (r *AssignmentDynamoRepository) CommitLink(ctx context.Context, a entities.Assignment, audit entities.AuditEntry) error {
	assignmentAV, err := attributevalue.MarshalMap(toAssignmentItem(a))
	if err != nil {
		return err
	}
	auditAV, err := attributevalue.MarshalMap(toAuditItem(audit))
	if err != nil {
		return err
	}
	claimAV, err := attributevalue.MarshalMap(claimItem{
		ContainerID: a.ContainerID,
		BillID:      a.BillID,
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.claimsTableName),
					Item:                claimAV,
					ConditionExpression: aws.String("attribute_not_exists(#container_id)"),
					ExpressionAttributeNames: map[string]string{
						"#container_id": "container_id",
					},
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                assignmentAV,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.billsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: a.BillID},
					},
					ConditionExpression: aws.String(
						"attribute_exists(#id) AND #status <> :completed AND #linked_count < #capacity"),
					UpdateExpression: aws.String(
						"SET #linked_count = #linked_count + :one, " +
							"#total_weight = #total_weight + :weight, " +
							"#total_child_units = #total_child_units + :units, " +
							"#status = :processing, #updated_at = :now"),
					ExpressionAttributeNames: map[string]string{
						"#id":                "id",
						"#status":            "status",
						"#linked_count":      "linked_count",
						"#capacity":          "capacity",
						"#total_weight":      "total_weight",
						"#total_child_units": "total_child_units",
						"#updated_at":        "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed":  &types.AttributeValueMemberS{Value: string(entities.BillStatusCompleted)},
						":processing": &types.AttributeValueMemberS{Value: string(entities.BillStatusProcessing)},
						":one":        &types.AttributeValueMemberN{Value: "1"},
						":weight":     &types.AttributeValueMemberN{Value: floatToString(a.WeightKg)},
						":units":      &types.AttributeValueMemberN{Value: intToString(a.ChildUnits)},
						":now":        &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.auditTableName),
					Item:      auditAV,
				},
			},
		},
	})
	return mapConditionErr(err)
}

// CommitUnlink is the mirror of CommitLink: assignment delete, claim delete
// and counter rollback as one unit, plus the unlink audit entry. The claim
// condition tolerates a claim already released by bill completion.
func (r *AssignmentDynamoRepository) CommitUnlink(ctx context.Context, a entities.Assignment, audit entities.AuditEntry) error {
	auditAV, err := attributevalue.MarshalMap(toAuditItem(audit))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: a.ID},
					},
					ConditionExpression: aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Delete: &types.Delete{
					TableName: aws.String(r.claimsTableName),
					Key: map[string]types.AttributeValue{
						"container_id": &types.AttributeValueMemberS{Value: a.ContainerID},
					},
					ConditionExpression: aws.String("attribute_not_exists(#container_id) OR #bill_id = :bid"),
					ExpressionAttributeNames: map[string]string{
						"#container_id": "container_id",
						"#bill_id":      "bill_id",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":bid": &types.AttributeValueMemberS{Value: a.BillID},
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.billsTableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: a.BillID},
					},
					ConditionExpression: aws.String(
						"attribute_exists(#id) AND #status <> :completed AND #linked_count >= :one"),
					UpdateExpression: aws.String(
						"SET #linked_count = #linked_count - :one, " +
							"#total_weight = #total_weight - :weight, " +
							"#total_child_units = #total_child_units - :units, " +
							"#updated_at = :now"),
					ExpressionAttributeNames: map[string]string{
						"#id":                "id",
						"#status":            "status",
						"#linked_count":      "linked_count",
						"#total_weight":      "total_weight",
						"#total_child_units": "total_child_units",
						"#updated_at":        "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completed": &types.AttributeValueMemberS{Value: string(entities.BillStatusCompleted)},
						":one":       &types.AttributeValueMemberN{Value: "1"},
						":weight":    &types.AttributeValueMemberN{Value: floatToString(a.WeightKg)},
						":units":     &types.AttributeValueMemberN{Value: intToString(a.ChildUnits)},
						":now":       &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
					},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.auditTableName),
					Item:      auditAV,
				},
			},
		},
	})
	return mapConditionErr(err)
}

// ReleaseClaim drops the container's claim only while billID still owns it.
// A claim owned by someone else is left alone and reported as done.
func (r *AssignmentDynamoRepository) ReleaseClaim(ctx context.Context, containerID, billID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.claimsTableName),
		Key: map[string]types.AttributeValue{
			"container_id": &types.AttributeValueMemberS{Value: containerID},
		},
		ConditionExpression: aws.String("attribute_not_exists(#container_id) OR #bill_id = :bid"),
		ExpressionAttributeNames: map[string]string{
			"#container_id": "container_id",
			"#bill_id":      "bill_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: billID},
		},
	})
	if err := mapConditionErr(err); err != nil && err != interfaces.ErrConflict {
		return err
	}
	return nil
}

func toAssignmentItem(a entities.Assignment) assignmentItem {
	return assignmentItem{
		ID:            a.ID,
		BillID:        a.BillID,
		ContainerID:   a.ContainerID,
		ContainerCode: a.ContainerCode,
		ChildUnits:    a.ChildUnits,
		WeightKg:      a.WeightKg,
		ActorID:       a.ActorID,
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAssignmentItem(it assignmentItem) entities.Assignment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Assignment{
		ID:            it.ID,
		BillID:        it.BillID,
		ContainerID:   it.ContainerID,
		ContainerCode: it.ContainerCode,
		ChildUnits:    it.ChildUnits,
		WeightKg:      it.WeightKg,
		ActorID:       it.ActorID,
		CreatedAt:     createdAt,
	}
}
