// internal/registry/types.go
package registry

import (
	"strconv"

	"github.com/google/uuid"
)

// imagePairCompare: two required asset ids plus a free-text prompt.
type imagePairCompare struct{}

func (imagePairCompare) validate(path string, payload map[string]interface{}) ErrorList {
	var errs ErrorList
	rejectExtraKeys(payload, map[string]bool{
		"left_asset_id": true, "right_asset_id": true, "prompt": true, "metadata": true,
	}, path, &errs)
	requireUUID(payload, "left_asset_id", path, &errs)
	requireUUID(payload, "right_asset_id", path, &errs)
	requireString(payload, "prompt", path, &errs)
	optionalObject(payload, "metadata", path, &errs)
	return errs
}

func (imagePairCompare) extractAssetIDs(payload map[string]interface{}) []uuid.UUID {
	var out []uuid.UUID
	var scratch ErrorList
	if id, ok := optionalUUID(payload, "left_asset_id", "", &scratch); ok {
		out = append(out, id)
	}
	if id, ok := optionalUUID(payload, "right_asset_id", "", &scratch); ok {
		out = append(out, id)
	}
	return out
}

// imageRankedGallery: at least two asset ids plus a ranking payload whose
// shape depends on the method discriminant.
type imageRankedGallery struct{}

func (imageRankedGallery) validate(path string, payload map[string]interface{}) ErrorList {
	var errs ErrorList
	rejectExtraKeys(payload, map[string]bool{
		"asset_ids": true, "prompt": true, "rankings": true, "metadata": true,
	}, path, &errs)
	validateAssetIDList(payload, path, &errs)
	requireString(payload, "prompt", path, &errs)
	optionalObject(payload, "metadata", path, &errs)

	if rankings, ok := requireObject(payload, "rankings", path, &errs); ok {
		validateRankings(rankings, path+".rankings", &errs)
	}
	return errs
}

func validateAssetIDList(payload map[string]interface{}, path string, errs *ErrorList) {
	raw, ok := payload["asset_ids"]
	if !ok {
		errs.Add(path+".asset_ids", KindMissingRequired, "field %q is required", "asset_ids")
		return
	}
	list, ok := raw.([]interface{})
	if !ok {
		errs.Add(path+".asset_ids", KindWrongType, "expected an array of UUID strings")
		return
	}
	if len(list) < 2 {
		errs.Add(path+".asset_ids", KindInvalid, "at least 2 asset ids are required, got %d", len(list))
	}
	for i, elem := range list {
		asUUID(elem, indexPath(path+".asset_ids", i), errs)
	}
}

func validateRankings(rankings map[string]interface{}, path string, errs *ErrorList) {
	rejectExtraKeys(rankings, map[string]bool{"method": true, "data": true}, path, errs)

	method, methodOK := requireString(rankings, "method", path, errs)
	data, dataOK := requireObject(rankings, "data", path, errs)
	if !methodOK || !dataOK {
		return
	}

	switch method {
	case "pairwise":
		// Pairwise carries no extra required shape; the data object must be
		// empty of unknown keys.
		rejectExtraKeys(data, map[string]bool{}, path+".data", errs)
	case "full_rank":
		validateFullRankData(data, path+".data", errs)
	case "scores":
		validateScoresData(data, path+".data", errs)
	default:
		errs.Add(path+".method", KindInvalid, "method must be one of pairwise, full_rank, scores; got %q", method)
	}
}

// full_rank: an explicit total order of asset-id strings plus an annotator
// count.
func validateFullRankData(data map[string]interface{}, path string, errs *ErrorList) {
	rejectExtraKeys(data, map[string]bool{"order": true, "annotator_count": true}, path, errs)

	if raw, ok := data["order"]; !ok {
		errs.Add(path+".order", KindMissingRequired, "field %q is required", "order")
	} else if list, isList := raw.([]interface{}); !isList {
		errs.Add(path+".order", KindWrongType, "expected an array of asset-id strings")
	} else {
		for i, elem := range list {
			if _, isStr := elem.(string); !isStr {
				errs.Add(indexPath(path+".order", i), KindWrongType, "expected a string")
			}
		}
	}

	if raw, ok := data["annotator_count"]; !ok {
		errs.Add(path+".annotator_count", KindMissingRequired, "field %q is required", "annotator_count")
	} else if _, isInt := asInt(raw); !isInt {
		errs.Add(path+".annotator_count", KindWrongType, "expected an integer")
	}
}

// scores: a mapping of asset-id string to numeric score plus a scale label.
func validateScoresData(data map[string]interface{}, path string, errs *ErrorList) {
	rejectExtraKeys(data, map[string]bool{"scores": true, "scale": true}, path, errs)

	if raw, ok := data["scores"]; !ok {
		errs.Add(path+".scores", KindMissingRequired, "field %q is required", "scores")
	} else if scores, isObj := raw.(map[string]interface{}); !isObj {
		errs.Add(path+".scores", KindWrongType, "expected a mapping of asset id to numeric score")
	} else {
		for key, val := range scores {
			if _, isNum := asNumber(val); !isNum {
				errs.Add(path+".scores."+key, KindWrongType, "expected a number")
			}
		}
	}

	requireString(data, "scale", path, errs)
}

func (imageRankedGallery) extractAssetIDs(payload map[string]interface{}) []uuid.UUID {
	list, ok := payload["asset_ids"].([]interface{})
	if !ok {
		return nil
	}
	var out []uuid.UUID
	var scratch ErrorList
	for _, elem := range list {
		if id, valid := asUUID(elem, "", &scratch); valid {
			out = append(out, id)
		}
	}
	return out
}

// videoWithTimeline: one required video asset plus an optional poster image.
type videoWithTimeline struct{}

func (videoWithTimeline) validate(path string, payload map[string]interface{}) ErrorList {
	var errs ErrorList
	rejectExtraKeys(payload, map[string]bool{
		"video_asset_id": true, "poster_image_asset_id": true, "metadata": true,
	}, path, &errs)
	requireUUID(payload, "video_asset_id", path, &errs)
	optionalUUID(payload, "poster_image_asset_id", path, &errs)
	optionalObject(payload, "metadata", path, &errs)
	return errs
}

func (videoWithTimeline) extractAssetIDs(payload map[string]interface{}) []uuid.UUID {
	var out []uuid.UUID
	var scratch ErrorList
	if id, ok := optionalUUID(payload, "video_asset_id", "", &scratch); ok {
		out = append(out, id)
	}
	if id, ok := optionalUUID(payload, "poster_image_asset_id", "", &scratch); ok {
		out = append(out, id)
	}
	return out
}

// audioWithCaptions: one required audio asset.
type audioWithCaptions struct{}

func (audioWithCaptions) validate(path string, payload map[string]interface{}) ErrorList {
	var errs ErrorList
	rejectExtraKeys(payload, map[string]bool{"audio_asset_id": true, "metadata": true}, path, &errs)
	requireUUID(payload, "audio_asset_id", path, &errs)
	optionalObject(payload, "metadata", path, &errs)
	return errs
}

func (audioWithCaptions) extractAssetIDs(payload map[string]interface{}) []uuid.UUID {
	var scratch ErrorList
	if id, ok := optionalUUID(payload, "audio_asset_id", "", &scratch); ok {
		return []uuid.UUID{id}
	}
	return nil
}

func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
