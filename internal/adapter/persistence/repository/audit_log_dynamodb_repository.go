package repository

import (
	"context"
	"time"

	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAuditLogTableName = "audit_log"

type auditLogItem struct {
	RequestID string            `dynamodbav:"request_id"`
	SortKey   string            `dynamodbav:"sk"`
	ID        string            `dynamodbav:"id"`
	Timestamp string            `dynamodbav:"timestamp"`
	Actor     string            `dynamodbav:"actor"`
	Category  string            `dynamodbav:"category"`
	Action    string            `dynamodbav:"action"`
	Details   string            `dynamodbav:"details,omitempty"`
	Metadata  map[string]string `dynamodbav:"metadata,omitempty"`
}

// AuditLogDynamoRepository persists append-only audit entries in DynamoDB.
//
// Table requirements:
//   - PK: request_id (string)
//   - SK: sk (string) — timestamp-prefixed so a plain Query returns entries
//     in append order
//
// Entries are immutable: writes are PutItem with a uniqueness condition and
// there is no update or delete path.

type AuditLogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAuditLogRepository = (*AuditLogDynamoRepository)(nil)

func NewAuditLogDynamoRepository(ddb *dynamodb.Client) *AuditLogDynamoRepository {
	return &AuditLogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("AUDIT_LOG_TABLE", defaultAuditLogTableName),
	}
}

func (r *AuditLogDynamoRepository) Append(ctx context.Context, entry entities.AuditLogEntry) (entities.AuditLogEntry, error) {
	ts := entry.Timestamp.UTC().Format(time.RFC3339Nano)
	it := auditLogItem{
		RequestID: entry.RequestID,
		SortKey:   ts + "#" + entry.ID,
		ID:        entry.ID,
		Timestamp: ts,
		Actor:     entry.Actor,
		Category:  string(entry.Category),
		Action:    entry.Action,
		Details:   entry.Details,
		Metadata:  entry.Metadata,
	}

	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.AuditLogEntry{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#sk)"),
		ExpressionAttributeNames: map[string]string{
			"#sk": "sk",
		},
	})
	if err != nil {
		return entities.AuditLogEntry{}, err
	}
	return entry, nil
}

func (r *AuditLogDynamoRepository) ListByRequestID(ctx context.Context, requestID string) ([]entities.AuditLogEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("#request_id = :request_id"),
		ExpressionAttributeNames: map[string]string{
			"#request_id": "request_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":request_id": &types.AttributeValueMemberS{Value: requestID},
		},
		ScanIndexForward: aws.Bool(true),
		ConsistentRead:   aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]entities.AuditLogEntry, 0, len(out.Items))
	for _, item := range out.Items {
		var it auditLogItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
		entries = append(entries, entities.AuditLogEntry{
			ID:        it.ID,
			RequestID: it.RequestID,
			Timestamp: ts,
			Actor:     it.Actor,
			Category:  entities.AuditCategory(it.Category),
			Action:    it.Action,
			Details:   it.Details,
			Metadata:  it.Metadata,
		})
	}
	return entries, nil
}
