// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Fantom-foundation/storemap/state"
	"github.com/Fantom-foundation/storemap/state/memory"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	keyAttr   = "pk"
	fieldAttr = "sk"
	// fieldMarker is prepended to fields since key attributes can not be empty.
	fieldMarker = "#"
)

// Client is the subset of the DynamoDB API used by the Store. It is
// implemented by *dynamodb.Client.
type Client interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// item is the DynamoDB representation of a state entry.
type item struct {
	Key   string `dynamodbav:"pk"`
	Field string `dynamodbav:"sk"`
	Value []byte `dynamodbav:"value"`
}

// Store is a DynamoDB based state.StateStore implementation.
type Store struct {
	client Client
	config Config
	ctx    context.Context
}

// New creates a new Store using the given client. Operations are performed
// with a background context; use WithContext to bind a different one.
func New(client Client, config Config) *Store {
	config.validate()
	return &Store{
		client: client,
		config: config,
		ctx:    context.Background(),
	}
}

// WithContext returns a view of the store performing all requests using the
// given context.
func (s *Store) WithContext(ctx context.Context) *Store {
	res := *s
	res.ctx = ctx
	return &res
}

func (s *Store) primaryKey(key, field string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		keyAttr:   &types.AttributeValueMemberS{Value: key},
		fieldAttr: &types.AttributeValueMemberS{Value: fieldMarker + field},
	}
}

func (s *Store) GetState(key, field string) ([]byte, error) {
	result, err := s.client.GetItem(s.ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.config.Table),
		Key:            s.primaryKey(key, field),
		ConsistentRead: aws.Bool(s.config.ConsistentRead),
	})
	if err != nil {
		return nil, fmt.Errorf("get item %q/%q: %w", key, field, err)
	}
	if result.Item == nil {
		return nil, nil
	}
	var res item
	if err := attributevalue.UnmarshalMap(result.Item, &res); err != nil {
		return nil, fmt.Errorf("unmarshal item %q/%q: %w", key, field, err)
	}
	return res.Value, nil
}

func (s *Store) PutState(key, field string, value []byte) state.ResultCode {
	attributes, err := attributevalue.MarshalMap(item{
		Key:   key,
		Field: fieldMarker + field,
		Value: value,
	})
	if err != nil {
		return state.FailureCode
	}
	_, err = s.client.PutItem(s.ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.config.Table),
		Item:      attributes,
	})
	if err != nil {
		return state.FailureCode
	}
	return state.SuccessCode
}

func (s *Store) DeleteState(key, field string) state.ResultCode {
	_, err := s.client.DeleteItem(s.ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.config.Table),
		Key:       s.primaryKey(key, field),
	})
	if err != nil {
		return state.FailureCode
	}
	return state.SuccessCode
}

// NewIteratorPrefixWithKey scans the table for all items with a matching key.
// The result is fetched eagerly and ordered by key and field.
func (s *Store) NewIteratorPrefixWithKey(prefix string) (state.ResultSet, state.ResultCode) {
	input := &dynamodb.ScanInput{
		TableName:      aws.String(s.config.Table),
		ConsistentRead: aws.Bool(s.config.ConsistentRead),
	}
	if prefix != "" {
		input.FilterExpression = aws.String("begins_with(#pk, :prefix)")
		input.ExpressionAttributeNames = map[string]string{"#pk": keyAttr}
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":prefix": &types.AttributeValueMemberS{Value: prefix},
		}
	}

	// Scans return items in hash order; they are buffered in memory to
	// obtain the (key, field) order required for iteration.
	buffer := memory.NewMemory()
	paginator := dynamodb.NewScanPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(s.ctx)
		if err != nil {
			return nil, state.FailureCode
		}
		for _, raw := range page.Items {
			var cur item
			if err := attributevalue.UnmarshalMap(raw, &cur); err != nil {
				return nil, state.FailureCode
			}
			if len(cur.Field) < len(fieldMarker) {
				continue
			}
			buffer.PutState(cur.Key, cur.Field[len(fieldMarker):], cur.Value)
		}
	}
	return buffer.NewIteratorPrefixWithKey(prefix)
}

// TableAdmin is the subset of the DynamoDB API needed for creating tables.
// It is implemented by *dynamodb.Client.
type TableAdmin interface {
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// CreateTable creates a table with the key schema required by the Store and
// waits until it is active. An already existing table is accepted.
func CreateTable(ctx context.Context, admin TableAdmin, table string, timeout time.Duration) error {
	_, err := admin.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(table),
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(keyAttr), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String(fieldAttr), KeyType: types.KeyTypeRange},
		},
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(keyAttr), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(fieldAttr), AttributeType: types.ScalarAttributeTypeS},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	var inUse *types.ResourceInUseException
	if err != nil && !errors.As(err, &inUse) {
		return fmt.Errorf("create table %s: %w", table, err)
	}
	waiter := dynamodb.NewTableExistsWaiter(admin)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table),
	}, timeout); err != nil {
		return fmt.Errorf("wait for table %s: %w", table, err)
	}
	return nil
}
