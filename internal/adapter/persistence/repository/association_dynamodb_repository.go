package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/francois2metz/siign/internal/domain/entities"
	"github.com/francois2metz/siign/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAssociationsTableName = "associations"

type associationItem struct {
	QuoteID       string `dynamodbav:"quote_id"`
	TransactionID string `dynamodbav:"transaction_id"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// AssociationDynamoRepository persists the quote/transaction ledger in
// DynamoDB.
//
// Table requirements:
//   - PK: quote_id (string)
//
// Uniqueness of quote_id is enforced by a conditional put, not by a read
// before the write: DynamoDB itself rejects the second insert for the same
// quote. Resolving a transaction back to its quote is a filtered scan, the
// table stays single-keyed like the original ledger.

type AssociationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssociationLedger = (*AssociationDynamoRepository)(nil)

func NewAssociationDynamoRepository(ddb *dynamodb.Client) *AssociationDynamoRepository {
	return &AssociationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSOCIATIONS_TABLE", defaultAssociationsTableName),
	}
}

func (r *AssociationDynamoRepository) Associate(ctx context.Context, quoteID, transactionID string) (entities.Association, error) {
	a := entities.Association{
		QuoteID:       quoteID,
		TransactionID: transactionID,
		CreatedAt:     time.Now().UTC(),
	}
	av, err := attributevalue.MarshalMap(toAssociationItem(a))
	if err != nil {
		return entities.Association{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#quote_id)"),
		ExpressionAttributeNames: map[string]string{
			"#quote_id": "quote_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Association{}, interfaces.ErrAssociationExists
		}
		return entities.Association{}, err
	}
	return a, nil
}

func (r *AssociationDynamoRepository) TransactionForQuote(ctx context.Context, quoteID string) (string, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return "", err
	}
	if len(out.Item) == 0 {
		return "", nil
	}

	var it associationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return "", err
	}
	return it.TransactionID, nil
}

func (r *AssociationDynamoRepository) QuoteForTransaction(ctx context.Context, transactionID string) (string, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#transaction_id = :transaction_id"),
		ExpressionAttributeNames: map[string]string{
			"#transaction_id": "transaction_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
	})
	if err != nil {
		return "", err
	}
	if len(out.Items) == 0 {
		return "", nil
	}

	var it associationItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return "", err
	}
	return it.QuoteID, nil
}

func (r *AssociationDynamoRepository) Remove(ctx context.Context, quoteID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"quote_id": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	return err
}

func (r *AssociationDynamoRepository) ListAll(ctx context.Context) ([]entities.Association, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	associations := make([]entities.Association, 0, len(out.Items))
	for _, item := range out.Items {
		var it associationItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		associations = append(associations, fromAssociationItem(it))
	}
	// Scan order is arbitrary; created_at restores insertion order.
	sort.Slice(associations, func(i, j int) bool {
		return associations[i].CreatedAt.Before(associations[j].CreatedAt)
	})
	return associations, nil
}

func toAssociationItem(a entities.Association) associationItem {
	return associationItem{
		QuoteID:       a.QuoteID,
		TransactionID: a.TransactionID,
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAssociationItem(it associationItem) entities.Association {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Association{
		QuoteID:       it.QuoteID,
		TransactionID: it.TransactionID,
		CreatedAt:     createdAt,
	}
}
