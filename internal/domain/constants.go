package domain

// DefaultBufferMinutes gap kept after a schedule ends before the trainer is free again
const DefaultBufferMinutes = 15

// ShiftMarker marks a standing-shift schedule in notes
const ShiftMarker = "[shift]"
