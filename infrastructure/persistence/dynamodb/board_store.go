// Package dynamodb persists board snapshots in a single-table DynamoDB
// layout: one item per client slot, overwritten wholesale on every save.
package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"colorboard/domain/core/aggregates"
	pkgerrors "colorboard/pkg/errors"
	"colorboard/pkg/utils"
)

// BoardStore implements ports.BoardStore on DynamoDB
type BoardStore struct {
	client    *awsdynamodb.Client
	tableName string
	logger    *zap.Logger
}

// boardRecord is the stored item. The snapshot travels as a JSON blob:
// the slot is opaque to the table, queried only ever by key.
type boardRecord struct {
	PK        string `dynamodbav:"PK"`
	ClientID  string `dynamodbav:"ClientID"`
	Snapshot  string `dynamodbav:"Snapshot"`
	UpdatedAt string `dynamodbav:"UpdatedAt"`
}

// NewBoardStore creates a DynamoDB-backed board store
func NewBoardStore(client *awsdynamodb.Client, tableName string, logger *zap.Logger) *BoardStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BoardStore{client: client, tableName: tableName, logger: logger}
}

func slotKey(clientID string) string {
	return "board#" + clientID
}

// Load returns the stored snapshot for the client, (nil, nil) when absent
func (s *BoardStore) Load(ctx context.Context, clientID string) (*aggregates.Snapshot, error) {
	out, err := s.client.GetItem(ctx, &awsdynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: slotKey(clientID)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, pkgerrors.NewStorageError("load board", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var record boardRecord
	if err := attributevalue.UnmarshalMap(out.Item, &record); err != nil {
		return nil, pkgerrors.NewStorageError("decode board record", err)
	}

	var snapshot aggregates.Snapshot
	if err := json.Unmarshal([]byte(record.Snapshot), &snapshot); err != nil {
		return nil, pkgerrors.NewStorageError("decode board snapshot", err)
	}
	return &snapshot, nil
}

// Save overwrites the client's stored snapshot
func (s *BoardStore) Save(ctx context.Context, clientID string, snapshot aggregates.Snapshot) error {
	blob, err := json.Marshal(snapshot)
	if err != nil {
		return pkgerrors.NewStorageError("encode board snapshot", err)
	}

	record := boardRecord{
		PK:        slotKey(clientID),
		ClientID:  clientID,
		Snapshot:  string(blob),
		UpdatedAt: utils.NowRFC3339(),
	}
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return pkgerrors.NewStorageError("encode board record", err)
	}

	_, err = s.client.PutItem(ctx, &awsdynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return pkgerrors.NewStorageError(fmt.Sprintf("save board %s", clientID), err)
	}
	return nil
}

// Delete removes the client's stored snapshot
func (s *BoardStore) Delete(ctx context.Context, clientID string) error {
	_, err := s.client.DeleteItem(ctx, &awsdynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: slotKey(clientID)},
		},
	})
	if err != nil {
		return pkgerrors.NewStorageError("delete board", err)
	}
	return nil
}
