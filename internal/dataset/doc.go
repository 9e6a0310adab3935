// Package dataset builds and persists the canonical per-dataset metadata
// files of the sync agent.
//
// Two files live in a dataset directory:
//
//   - the dataset info file (_QH_dataset_info.yaml), a user-facing
//     description of the dataset (name, creation time, attributes,
//     keywords, declared converters, skip patterns) written by GenerateInfo
//   - the sync manifest (.QH_manifest.yaml), the agent's own bookkeeping of
//     which files were uploaded, with what modification time and outcome
//
// Both files are versioned YAML mappings and are replaced atomically on
// every write, so readers never observe a truncated file.
package dataset
