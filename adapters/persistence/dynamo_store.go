package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/internal/domain/document"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	dynamoPartitionKey  = "pk"
	dynamoDocumentAttr  = "document"
	defaultTablePrefix  = "portfolio"
	dynamoTableWaitTime = 2 * time.Minute
)

// DynamoTableName derives the single documents table from DB_NAME.
func DynamoTableName(cfg config.Config) string {
	prefix := cfg.DB.Name
	if prefix == "" {
		prefix = defaultTablePrefix
	}
	return prefix + "_documents"
}

func NewDynamoDBClient(ctx context.Context, cfg config.Config) (*dynamodb.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
		}
	}), nil
}

// dynamoDocumentStore keeps every collection document as one item of a shared
// table, partitioned by "<collection>#<key>".
type dynamoDocumentStore struct {
	client *dynamodb.Client
	table  string
	logger logger.Logger
}

func NewDynamoDocumentStore(client *dynamodb.Client, table string, logger logger.Logger) document.Store {
	return &dynamoDocumentStore{client: client, table: table, logger: logger}
}

func dynamoItemKey(collection, key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		dynamoPartitionKey: &types.AttributeValueMemberS{Value: collection + "#" + key},
	}
}

// EnsureDynamoTable creates the documents table when it does not exist yet and waits
// until it is active.
func EnsureDynamoTable(ctx context.Context, client *dynamodb.Client, table string, log logger.Logger) error {
	_, err := client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(table),
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(dynamoPartitionKey), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(dynamoPartitionKey), KeyType: types.KeyTypeHash},
		},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		var inUse *types.ResourceInUseException
		if !errors.As(err, &inUse) {
			return fmt.Errorf("create table %s: %w", table, err)
		}
	} else {
		log.Info("Created DynamoDB documents table", zap.String("table", table))
	}

	waiter := dynamodb.NewTableExistsWaiter(client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(table)}, dynamoTableWaitTime); err != nil {
		return fmt.Errorf("wait for table %s: %w", table, err)
	}
	return nil
}

func (s *dynamoDocumentStore) Get(ctx context.Context, collection, key string) (json.RawMessage, error) {
	if !document.IsCollection(collection) {
		return nil, apperror.NewInternal("unknown collection", fmt.Errorf("collection %q", collection))
	}

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            dynamoItemKey(collection, key),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, apperror.NewStore("get "+collection+"/"+key, err)
	}
	if out.Item == nil {
		return nil, apperror.NewNotFound(collection, key)
	}

	attr, ok := out.Item[dynamoDocumentAttr]
	if !ok {
		return nil, apperror.NewStore("get "+collection+"/"+key, errors.New("item has no document attribute"))
	}

	var doc map[string]any
	if err := attributevalue.Unmarshal(attr, &doc); err != nil {
		return nil, apperror.NewStore("decode "+collection+"/"+key, err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, apperror.NewStore("encode "+collection+"/"+key, err)
	}
	return raw, nil
}

func (s *dynamoDocumentStore) Replace(ctx context.Context, collection, key string, doc json.RawMessage) error {
	if !document.IsCollection(collection) {
		return apperror.NewInternal("unknown collection", fmt.Errorf("collection %q", collection))
	}

	var fields map[string]any
	if err := json.Unmarshal(doc, &fields); err != nil {
		return apperror.NewStore("replace "+collection+"/"+key, err)
	}

	attr, err := attributevalue.Marshal(fields)
	if err != nil {
		return apperror.NewStore("marshal "+collection+"/"+key, err)
	}

	item := dynamoItemKey(collection, key)
	item["collection"] = &types.AttributeValueMemberS{Value: collection}
	item[dynamoDocumentAttr] = attr
	item["updated_at"] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	}); err != nil {
		return apperror.NewStore("replace "+collection+"/"+key, err)
	}
	return nil
}

func (s *dynamoDocumentStore) Ping(ctx context.Context) error {
	if _, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(s.table)}); err != nil {
		return apperror.NewStore("ping", err)
	}
	return nil
}

func (s *dynamoDocumentStore) Close() {}
