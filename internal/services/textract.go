package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"

	"careercopilot/verifier/internal/models"
)

// DocumentExtractor runs FORMS analysis over a stored credential document
// and returns the raw block graph. A failed call is fatal for the run: a
// partial block graph cannot be trusted for reconciliation.
type DocumentExtractor interface {
	AnalyzeForms(ctx context.Context, objectKey string) ([]types.Block, error)
}

// TextExtractor converts a stored resume into plain line-oriented text,
// one line per detected LINE block, in service order.
type TextExtractor interface {
	ExtractText(ctx context.Context, objectKey string) (string, error)
}

type textractAPI interface {
	AnalyzeDocument(ctx context.Context, params *textract.AnalyzeDocumentInput, optFns ...func(*textract.Options)) (*textract.AnalyzeDocumentOutput, error)
	DetectDocumentText(ctx context.Context, params *textract.DetectDocumentTextInput, optFns ...func(*textract.Options)) (*textract.DetectDocumentTextOutput, error)
}

type TextractService struct {
	client textractAPI
	bucket string
}

func NewTextractService(ctx context.Context, region, bucket string) (*TextractService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &TextractService{
		client: textract.NewFromConfig(cfg),
		bucket: bucket,
	}, nil
}

// NewTextractServiceWithClient wires an existing client, used by tests.
func NewTextractServiceWithClient(client textractAPI, bucket string) *TextractService {
	return &TextractService{client: client, bucket: bucket}
}

func (t *TextractService) AnalyzeForms(ctx context.Context, objectKey string) ([]types.Block, error) {
	resp, err := t.client.AnalyzeDocument(ctx, &textract.AnalyzeDocumentInput{
		Document: &types.Document{
			S3Object: &types.S3Object{
				Bucket: aws.String(t.bucket),
				Name:   aws.String(objectKey),
			},
		},
		FeatureTypes: []types.FeatureType{types.FeatureTypeForms},
	})
	if err != nil {
		return nil, fmt.Errorf("textract forms analysis failed for %s: %w", objectKey, err)
	}

	return resp.Blocks, nil
}

func (t *TextractService) ExtractText(ctx context.Context, objectKey string) (string, error) {
	resp, err := t.client.DetectDocumentText(ctx, &textract.DetectDocumentTextInput{
		Document: &types.Document{
			S3Object: &types.S3Object{
				Bucket: aws.String(t.bucket),
				Name:   aws.String(objectKey),
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("textract text detection failed for %s: %w", objectKey, err)
	}

	var sb strings.Builder
	for _, block := range resp.Blocks {
		if block.BlockType != types.BlockTypeLine {
			continue
		}
		sb.WriteString(aws.ToString(block.Text))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// ParseKeyValues derives a flat field mapping from a FORMS block graph.
// For every KEY_VALUE_SET entity flagged as a KEY, the key string is the
// concatenated text of its CHILD blocks and the value string is the
// concatenated text reachable through its VALUE relationship. VALUE
// containers carry no text of their own, so their CHILD words are resolved
// too. Keys with no resolvable value still get an entry with an empty
// value; duplicate keys resolve last-seen-wins.
func ParseKeyValues(blocks []types.Block) models.DocumentFields {
	byID := make(map[string]types.Block, len(blocks))
	for _, b := range blocks {
		byID[aws.ToString(b.Id)] = b
	}

	fields := models.DocumentFields{}

	for _, block := range blocks {
		if block.BlockType != types.BlockTypeKeyValueSet || !hasEntityType(block, types.EntityTypeKey) {
			continue
		}

		var keyText, valueText strings.Builder

		for _, rel := range block.Relationships {
			switch rel.Type {
			case types.RelationshipTypeChild:
				for _, id := range rel.Ids {
					appendBlockText(&keyText, byID[id])
				}
			case types.RelationshipTypeValue:
				for _, id := range rel.Ids {
					value := byID[id]
					appendBlockText(&valueText, value)
					for _, valueRel := range value.Relationships {
						if valueRel.Type != types.RelationshipTypeChild {
							continue
						}
						for _, childID := range valueRel.Ids {
							appendBlockText(&valueText, byID[childID])
						}
					}
				}
			}
		}

		key := strings.TrimSpace(keyText.String())
		if key == "" {
			continue
		}
		fields[key] = strings.TrimSpace(valueText.String())
	}

	return fields
}

func hasEntityType(block types.Block, want types.EntityType) bool {
	for _, et := range block.EntityTypes {
		if et == want {
			return true
		}
	}
	return false
}

func appendBlockText(sb *strings.Builder, block types.Block) {
	text := aws.ToString(block.Text)
	if text == "" {
		return
	}
	sb.WriteString(text)
	sb.WriteString(" ")
}
