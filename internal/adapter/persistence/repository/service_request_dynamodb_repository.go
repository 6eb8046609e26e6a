package repository

import (
	"context"
	"errors"
	"time"

	"repairtrack/internal/domain/entities"
	"repairtrack/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServiceRequestsTableName = "service_requests"

type quoteItemRecord struct {
	Description string  `dynamodbav:"description"`
	Cost        float64 `dynamodbav:"cost"`
	Currency    string  `dynamodbav:"currency"`
}

type quoteRecord struct {
	ID        string            `dynamodbav:"id"`
	Items     []quoteItemRecord `dynamodbav:"items"`
	TotalCost float64           `dynamodbav:"total_cost"`
	Currency  string            `dynamodbav:"currency"`
	Decision  string            `dynamodbav:"decision"`
	CreatedAt string            `dynamodbav:"created_at"`
}

type eprEntryRecord struct {
	Timestamp      string   `dynamodbav:"timestamp"`
	Actor          string   `dynamodbav:"actor"`
	Status         string   `dynamodbav:"status"`
	Action         string   `dynamodbav:"action"`
	Details        string   `dynamodbav:"details,omitempty"`
	CostEstimation *float64 `dynamodbav:"cost_estimation,omitempty"`
	Currency       string   `dynamodbav:"currency,omitempty"`
}

type serviceRequestItem struct {
	ID               string           `dynamodbav:"id"`
	CustomerID       string           `dynamodbav:"customer_id"`
	CustomerName     string           `dynamodbav:"customer_name"`
	ProductName      string           `dynamodbav:"product_name"`
	SerialNumber     string           `dynamodbav:"serial_number"`
	FaultDescription string           `dynamodbav:"fault_description"`
	Status           string           `dynamodbav:"status"`
	PaymentCompleted bool             `dynamodbav:"payment_completed"`
	PaymentOrderID   string           `dynamodbav:"payment_order_id,omitempty"`
	PaymentID        string           `dynamodbav:"payment_id,omitempty"`
	AssignedTeam     string           `dynamodbav:"assigned_team,omitempty"`
	Quote            *quoteRecord     `dynamodbav:"quote,omitempty"`
	EPRTimeline      []eprEntryRecord `dynamodbav:"epr_timeline,omitempty"`
	CreatedAt        string           `dynamodbav:"created_at"`
	UpdatedAt        string           `dynamodbav:"updated_at"`
}

// ServiceRequestDynamoRepository persists ServiceRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// All mutations are conditional UpdateItem calls on the single request
// record; the conditional update on payment_completed / quote.decision is
// what makes settlement application and quote decisions race-safe.

type ServiceRequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb *dynamodb.Client) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICE_REQUESTS_TABLE", defaultServiceRequestsTableName),
	}
}

func (r *ServiceRequestDynamoRepository) Create(ctx context.Context, req entities.ServiceRequest) (entities.ServiceRequest, error) {
	av, err := attributevalue.MarshalMap(toServiceRequestItem(req))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRequest{}, nil
	}

	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func (r *ServiceRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.RequestStatus) (entities.ServiceRequest, error) {
	return r.update(ctx, id, aws.String("attribute_exists(#id)"), func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceRequestDynamoRepository) AttachQuote(ctx context.Context, id string, q entities.Quote) (entities.ServiceRequest, error) {
	qav, err := attributevalue.Marshal(toQuoteRecord(&q))
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	return r.update(ctx, id, aws.String("attribute_exists(#id) AND attribute_not_exists(#quote)"), func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #quote = :quote, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":quote":      qav,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#quote":      "quote",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceRequestDynamoRepository) UpdateQuoteDecision(ctx context.Context, id string, decision entities.QuoteDecision) (entities.ServiceRequest, bool, error) {
	updated, err := r.update(ctx, id, aws.String("attribute_exists(#id) AND #quote.#decision = :pending"), func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #quote.#decision = :decision, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":decision":   &types.AttributeValueMemberS{Value: string(decision)},
			":pending":    &types.AttributeValueMemberS{Value: string(entities.QuoteDecisionPending)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#quote":      "quote",
			"#decision":   "decision",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.ServiceRequest{}, false, err
	}
	if updated.ID != "" {
		return updated, false, nil
	}

	// The conditional check failed: either the record/quote is missing or
	// the quote already left pending. Re-read to tell the two apart.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, false, err
	}
	if current.ID != "" && current.Quote != nil && current.Quote.IsDecided() {
		return current, true, nil
	}
	return entities.ServiceRequest{}, false, nil
}

func (r *ServiceRequestDynamoRepository) SetPaymentOrder(ctx context.Context, id string, orderID string) (entities.ServiceRequest, error) {
	return r.update(ctx, id, aws.String("attribute_exists(#id)"), func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_order_id = :order_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":order_id":   &types.AttributeValueMemberS{Value: orderID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_order_id": "payment_order_id",
			"#updated_at":       "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceRequestDynamoRepository) MarkPaymentCompleted(ctx context.Context, id string, paymentID string, orderID string) (entities.ServiceRequest, bool, error) {
	updated, err := r.update(ctx, id, aws.String("attribute_exists(#id) AND #payment_completed = :false"), func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #payment_completed = :true, #payment_id = :payment_id, #payment_order_id = :order_id, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":true":       &types.AttributeValueMemberBOOL{Value: true},
			":false":      &types.AttributeValueMemberBOOL{Value: false},
			":payment_id": &types.AttributeValueMemberS{Value: paymentID},
			":order_id":   &types.AttributeValueMemberS{Value: orderID},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#payment_completed": "payment_completed",
			"#payment_id":        "payment_id",
			"#payment_order_id":  "payment_order_id",
			"#updated_at":        "updated_at",
		}
		return expr, vals, names
	})
	if err != nil {
		return entities.ServiceRequest{}, false, err
	}
	if updated.ID != "" {
		return updated, true, nil
	}

	// Condition failed: the record is already settled (or missing). The
	// too-late caller still gets the authoritative settled record.
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceRequest{}, false, err
	}
	return current, false, nil
}

func (r *ServiceRequestDynamoRepository) AppendEPREntry(ctx context.Context, id string, entry entities.EPREntry) (entities.ServiceRequest, error) {
	eav, err := attributevalue.Marshal([]eprEntryRecord{toEPREntryRecord(entry)})
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	return r.update(ctx, id, aws.String("attribute_exists(#id)"), func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #epr_timeline = list_append(if_not_exists(#epr_timeline, :empty), :entry), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":entry":      eav,
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#epr_timeline": "epr_timeline",
			"#updated_at":   "updated_at",
		}
		return expr, vals, names
	})
}

func (r *ServiceRequestDynamoRepository) update(
	ctx context.Context,
	id string,
	condition *string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.ServiceRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       condition,
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRequest{}, nil
		}
		return entities.ServiceRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ServiceRequest{}, nil
	}
	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func toServiceRequestItem(req entities.ServiceRequest) serviceRequestItem {
	it := serviceRequestItem{
		ID:               req.ID,
		CustomerID:       req.CustomerID,
		CustomerName:     req.CustomerName,
		ProductName:      req.ProductName,
		SerialNumber:     req.SerialNumber,
		FaultDescription: req.FaultDescription,
		Status:           string(req.Status),
		PaymentCompleted: req.PaymentCompleted,
		PaymentOrderID:   req.PaymentOrderID,
		PaymentID:        req.PaymentID,
		AssignedTeam:     req.AssignedTeam,
		Quote:            toQuoteRecord(req.Quote),
		CreatedAt:        req.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        req.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, e := range req.EPRTimeline {
		it.EPRTimeline = append(it.EPRTimeline, toEPREntryRecord(e))
	}
	return it
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	req := entities.ServiceRequest{
		ID:               it.ID,
		CustomerID:       it.CustomerID,
		CustomerName:     it.CustomerName,
		ProductName:      it.ProductName,
		SerialNumber:     it.SerialNumber,
		FaultDescription: it.FaultDescription,
		Status:           entities.RequestStatus(it.Status),
		PaymentCompleted: it.PaymentCompleted,
		PaymentOrderID:   it.PaymentOrderID,
		PaymentID:        it.PaymentID,
		AssignedTeam:     it.AssignedTeam,
		Quote:            fromQuoteRecord(it.Quote),
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
	for _, e := range it.EPRTimeline {
		req.EPRTimeline = append(req.EPRTimeline, fromEPREntryRecord(e))
	}
	return req
}

func toQuoteRecord(q *entities.Quote) *quoteRecord {
	if q == nil {
		return nil
	}
	rec := &quoteRecord{
		ID:        q.ID,
		TotalCost: q.TotalCost,
		Currency:  q.Currency,
		Decision:  string(q.Decision),
		CreatedAt: q.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, item := range q.Items {
		rec.Items = append(rec.Items, quoteItemRecord(item))
	}
	return rec
}

func fromQuoteRecord(rec *quoteRecord) *entities.Quote {
	if rec == nil {
		return nil
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	q := &entities.Quote{
		ID:        rec.ID,
		TotalCost: rec.TotalCost,
		Currency:  rec.Currency,
		Decision:  entities.QuoteDecision(rec.Decision),
		CreatedAt: createdAt,
	}
	for _, item := range rec.Items {
		q.Items = append(q.Items, entities.QuoteItem(item))
	}
	return q
}

func toEPREntryRecord(e entities.EPREntry) eprEntryRecord {
	return eprEntryRecord{
		Timestamp:      e.Timestamp.UTC().Format(time.RFC3339Nano),
		Actor:          e.Actor,
		Status:         e.Status,
		Action:         e.Action,
		Details:        e.Details,
		CostEstimation: e.CostEstimation,
		Currency:       e.Currency,
	}
}

func fromEPREntryRecord(rec eprEntryRecord) entities.EPREntry {
	ts, _ := time.Parse(time.RFC3339Nano, rec.Timestamp)
	return entities.EPREntry{
		Timestamp:      ts,
		Actor:          rec.Actor,
		Status:         rec.Status,
		Action:         rec.Action,
		Details:        rec.Details,
		CostEstimation: rec.CostEstimation,
		Currency:       rec.Currency,
	}
}
